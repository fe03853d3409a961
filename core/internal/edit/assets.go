package edit

import (
	"strings"

	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/assetref"
	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/document"
	fileUtil "github.com/kuchuk-borom-debbarma/htmltool/core/internal/util/file"
	"github.com/rs/zerolog/log"
)

// assetQuery selects every attribute that may point to a local asset.
const assetQuery = "//@src|//@href|//@poster"

type asset struct {
	node document.Node
	ref  assetref.Reference
	path string
}

// localAssets returns the asset references of doc that resolve to an existing
// file relative to the directory of file. Blank values, protocol-relative
// URLs and references to missing files are skipped without error.
func localAssets(doc *document.Document, file string) ([]asset, error) {
	nodes, err := doc.Select(assetQuery)
	if err != nil {
		return nil, err
	}

	var assets []asset
	for _, n := range nodes {
		value := n.Value()
		if strings.TrimSpace(value) == "" {
			continue
		}
		if assetref.IsProtocolRelative(value) {
			continue
		}

		ref := assetref.Split(value)
		path := fileUtil.ResolveAsset(file, ref.Path)
		if !fileUtil.IsFile(path) {
			log.Debug().Str("file", file).Str("ref", value).Msg("Skipping reference to missing asset")
			continue
		}
		assets = append(assets, asset{node: n, ref: ref, path: path})
	}
	return assets, nil
}
