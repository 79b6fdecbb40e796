package site

import "github.com/xvzls/BrainMade-org/markup"

const (
	siteTitle   = "The Brainmade Mark"
	repoURL     = "https://github.com/0atman/Brainmade-org"
	tailwindCDN = "https://cdn.tailwindcss.com"
)

const tailwindConfig = `tailwind.config = {
  theme: {
    container: {
      center: true,
    },
    fontFamily: {
      "mono": "courier, monospace",
    }
  }
}`

// navigation is shared by every page, so its section links point at index.html.
var navigation = []struct {
	Label string
	Href  string
}{
	{Label: "About", Href: "index.html#about"},
	{Label: "Downloads", Href: "index.html#downloads"},
	{Label: "Github", Href: repoURL},
	{Label: "Credits", Href: "credits.html"},
}

// Template wraps inner in the document shell shared by all pages: head
// metadata, navigation, a bordered content container and the footer.
func Template(inner markup.Node) markup.Node {
	return markup.Group{
		markup.Doctype(),
		markup.E("html", markup.Attrs("lang", "en"),
			head(),
			markup.E("body", markup.Attrs("class", "bg-black text-white font-mono text-sm md:text-2xl mx-auto w-full max-w-5xl"),
				nav(),
				markup.E("div", markup.Attrs("class", "border-black border-8 container mx-auto"), inner),
				footer(),
			),
		),
	}
}

func head() markup.Node {
	return markup.E("head", nil,
		markup.V("meta", markup.Attrs("http-equiv", "x-clacks-overhead", "content", "GNU Terry Pratchett")),
		markup.V("link", markup.Attrs("href", "black-favicon.png", "rel", "icon", "media", "(prefers-color-scheme: light)")),
		markup.V("link", markup.Attrs("href", "white-favicon.png", "rel", "icon", "media", "(prefers-color-scheme: dark)")),
		markup.E("script", markup.Attrs("src", tailwindCDN)),
		markup.E("script", markup.Attrs("src", "tw.js")),
		markup.E("script", nil, markup.Raw(tailwindConfig)),
		markup.V("meta", markup.Attrs("charset", "utf-8")),
		markup.V("meta", markup.Attrs("name", "description", "content", metaDescription(slogan, siteTitle))),
		markup.V("meta", markup.Attrs("content", "width=device-width, initial-scale=1", "name", "viewport")),
		markup.E("title", markup.Attrs("class", "text-4xl"), markup.Raw(siteTitle)),
	)
}

func nav() markup.Node {
	links := make(markup.Group, len(navigation))
	for i, item := range navigation {
		links[i] = markup.E("a", markup.Attrs("href", item.Href, "class", linkClasses), markup.Raw(item.Label))
	}
	return markup.E("nav", markup.Attrs("class", "flex items-center justify-between flex-wrap bg-black-500 p-6"),
		markup.E("div", markup.Attrs("class", "flex items-center flex-shrink-0 text-white mr-6"),
			markup.E("span", markup.Attrs("class", "font-semibold text-xl tracking-tight"), markup.Raw(siteTitle)),
		),
		markup.E("div", markup.Attrs("class", "w-full block flex-grow lg:flex lg:items-center lg:w-auto"),
			markup.E("div", markup.Attrs("class", "text-xl lg:flex-grow"), links),
		),
	)
}
