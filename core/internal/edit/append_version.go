package edit

import (
	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/assetref"
	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/document"
	fileUtil "github.com/kuchuk-borom-debbarma/htmltool/core/internal/util/file"
	"github.com/rs/zerolog/log"
)

// AppendVersion adds a v=<marker> query parameter, derived from the asset
// content, to every src, href and poster attribute pointing to a local file.
type AppendVersion struct{}

func (AppendVersion) Name() string { return "append-version" }

func (AppendVersion) SaveAlways() bool { return false }

func (AppendVersion) Apply(doc *document.Document, file string) (int, error) {
	assets, err := localAssets(doc, file)
	if err != nil {
		return 0, err
	}

	for _, a := range assets {
		data, err := fileUtil.ReadBytes(a.path)
		if err != nil {
			return 0, err
		}

		marker := assetref.Marker(data)
		a.node.SetValue(a.ref.WithVersion(marker).String())
		log.Debug().Str("asset", a.path).Str("marker", marker).Msg("Stamped asset reference")
	}
	return len(assets), nil
}
