package site

import "github.com/xvzls/BrainMade-org/markup"

// Page is a rendered document and where it goes, relative to the output dir.
type Page struct {
	Path string
	HTML []byte
}

type pageEntry struct {
	path  string
	build func() markup.Node
}

// sitePages lists every page in write order.
var sitePages = []pageEntry{
	{path: "index.html", build: Index},
	{path: "credits.html", build: Credits},
}

// Index composes the landing page.
func Index() markup.Node {
	return Template(markup.Group{
		heading(),
		intro(),
		breaks(2),
		about(),
		breaks(2),
		downloads(),
		breaks(2),
		aboutMe(),
	})
}

// Credits composes the attribution page.
func Credits() markup.Node {
	return Template(markup.Group{
		heading(),
		creditsHeading(),
		creditsList(),
		acknowledgements(),
	})
}
