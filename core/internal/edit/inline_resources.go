package edit

import (
	"encoding/base64"

	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/document"
	fileUtil "github.com/kuchuk-borom-debbarma/htmltool/core/internal/util/file"
	"github.com/rs/zerolog/log"
)

// InlineResources embeds local assets into the document. Scripts get the
// file text as content, stylesheet links become style elements, and any
// other reference is rewritten as a base64 data URI.
//
// ResourcePatterns is accepted but does not restrict which assets are
// inlined.
type InlineResources struct {
	ResourcePatterns []string
}

func (InlineResources) Name() string { return "inline-resources" }

func (InlineResources) SaveAlways() bool { return false }

func (op InlineResources) Apply(doc *document.Document, file string) (int, error) {
	assets, err := localAssets(doc, file)
	if err != nil {
		return 0, err
	}

	for _, a := range assets {
		el := a.node.Element()

		switch {
		case el != nil && el.Is("script"):
			text, err := fileUtil.ReadText(a.path)
			if err != nil {
				return 0, err
			}
			el.RemoveAttribute("src")
			el.SetInnerText(text)

		case el != nil && el.Is("link"):
			text, err := fileUtil.ReadText(a.path)
			if err != nil {
				return 0, err
			}
			el.Rename("style")
			el.RemoveAttribute("href")
			el.SetInnerText(text)

		default:
			data, err := fileUtil.ReadBytes(a.path)
			if err != nil {
				return 0, err
			}
			a.node.SetValue(dataURI(a.path, data))
		}

		log.Debug().Str("asset", a.path).Msg("Inlined asset")
	}
	return len(assets), nil
}

func dataURI(path string, data []byte) string {
	return "data:" + contentType(path) + ";base64," + base64.StdEncoding.EncodeToString(data)
}
