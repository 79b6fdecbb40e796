package site

import (
	_ "embed"

	"github.com/xvzls/BrainMade-org/markup"
	"github.com/xvzls/BrainMade-org/renderer"
)

// Section builders return fixed content and never reference the shell or
// each other (widget is the one leaf shared by intro).

const (
	slogan      = "When you see this logo on any artwork, whether painting, poetry, or prose, you know that it was made by a human just like you."
	linkClasses = "underline block lg:inline-block lg:mt-0 text-black-200 hover:text-white mr-4"
)

//go:embed content/thanks.md
var thanksSource string

// markdown converts the embedded sections. It never minifies.
var markdown = renderer.New()

func breaks(n int) markup.Group {
	group := make(markup.Group, n)
	for i := range group {
		group[i] = markup.Br()
	}
	return group
}

func underline(href string, children ...markup.Node) markup.Node {
	return markup.E("a", markup.Attrs("class", "underline", "href", href), children...)
}

func downloadLink(file string) markup.Node {
	return markup.E("li", nil,
		markup.E("a", markup.Attrs("href", file, "class", linkClasses), markup.Raw(file)),
	)
}

func downloadGroup(title string, files ...string) markup.Group {
	items := make(markup.Group, len(files))
	for i, file := range files {
		items[i] = downloadLink(file)
	}
	return markup.Group{
		markup.E("h3", markup.Attrs("class", "text-l"), markup.E("b", nil, markup.Raw(title))),
		markup.E("ul", markup.Attrs("class", "list-disc"), items...),
	}
}

func heading() markup.Node {
	return markup.Group{
		markup.E("div", markup.Attrs("class", "flex w-full justify-center"),
			markup.V("img", markup.Attrs(
				"class", "w-1/2",
				"alt", "A logo of a human with a seed germinating in their head, with the word 'Brainmade' next to it, along with the website brainmade.org underneath.",
				"src", "white-logo.svg",
			)),
		),
		breaks(2),
		markup.E("h2", markup.Attrs("class", "slogan"),
			markup.E("b", markup.Attrs("class", "text-2xl"), markup.Raw(slogan)),
		),
		breaks(2),
	}
}

// widget needs https to load the video preview.
func widget() markup.Node {
	return markup.V("img", markup.Attrs("class", "w-1/2", "src", "video.png"))
}

func intro() markup.Node {
	return markup.Func(func(buf []byte) []byte {
		return markup.Append(buf,
			markup.Raw("The "), markup.E("i", nil, markup.Raw("Brainmade")),
			markup.Raw(" mark is something you can attach to any works that are mostly made by you or your friends, not by generative tools like GPT. I've built this website to freely share the "),
			underline("#downloads", markup.Raw("high-resolution black or white versions")),
			markup.Raw(" of the logo with you, which you can download and attach to your own projects if you'd like to make this statement."),
			markup.Br(),
			markup.Raw("I hope the following video will explain in detail for making this clear, but the tl;dr is:"),
			breaks(2),
			markup.E("ul", markup.Attrs("class", "list-decimal"),
				markup.E("li", nil, markup.E("b", nil, markup.Raw("I don't hate AIs,"))),
				markup.E("li", nil, markup.E("b", nil, markup.Raw("I love humans!"))),
			),
			breaks(2),
			markup.E("b", nil,
				underline("https://youtu.be/kul0z3OTmVM",
					markup.Raw("Watch my short video here, or read on."),
					widget(),
				),
			),
		)
	})
}

func about() markup.Node {
	return markup.Group{
		markup.E("h1", markup.Attrs("class", "text-4xl", "id", "about"), markup.E("b", nil, markup.Raw("About"))),
		markup.Br(),
		markup.Raw("I don't need 100% human made, I perhaps need 90% human made. Three example may make my thinking clearer:"),
		markup.E("ul", markup.Attrs("class", "list-decimal"),
			markup.E("li", nil, markup.Raw("Using, say, chatgpt as a rhyming dictionary feels fine, but writing whole verses of your poem doesn't.")),
			markup.E("li", nil, markup.Raw("Using DALL-E to start brainstorming with 100 generated views of birds sitting on telephone lines seems fine, but getting it to paint large sections of your artwork doesn't.")),
			markup.E("li", nil, markup.Raw("Asking a text generator to give you 10 happy-sounding synonyms for despair sparks joy in me, but asking it to write your anti-trancendentalist masterpiece does not.")),
		),
		markup.Br(),
		markup.Raw("Using these tools to make more of the artwork you want is valid, but you're not a creator, you're still a consumer. I'm not sure exactly what 'too much AI' is, but just like your audience, I'll know it when I see it."),
		breaks(2),
		markup.Raw("I love knowing a human made the artwork I'm consuming."),
		markup.Br(),
		markup.Raw("There's "), markup.E("i", nil, markup.Raw("something")), markup.Raw(" there, something transcendent and magical."),
		breaks(2),
		markup.Raw("I "), markup.E("i", nil, markup.Raw("like")), markup.Raw(" that you tried hard, that's part of the experience."),
	}
}

func downloads() markup.Node {
	return markup.Group{
		markup.E("h2", markup.Attrs("id", "downloads", "class", "text-4xl"), markup.E("b", nil, markup.Raw("Downloads"))),
		markup.Br(),
		downloadGroup("White", "white-logo.png", "white-logo.svg"),
		downloadGroup("Black", "black-logo.png", "black-logo.svg"),
		downloadGroup("88x31 Buttons", "88x31-light.png", "88x31-dark.png"),
	}
}

func aboutMe() markup.Node {
	return markup.Func(func(buf []byte) []byte {
		return markup.Append(buf,
			markup.E("h2", markup.Attrs("id", "about-me", "class", "text-4xl"), markup.E("b", nil, markup.Raw("About Me"))),
			markup.Br(),
			markup.Raw("I'm Tris, I'm a writer and producer of "),
			underline("http://noboilerplate.org", markup.Raw("fast, technical videos")),
			markup.Raw(", and "),
			underline("https://namtao.com", markup.Raw("audiofiction and music.")),
			markup.Br(),
			markup.Raw("My first career was as a web developer, doing production on the side for 15 years, but in 2022 I accidentally become entirely self-employed thanks to the surprising success of my YouTube channel, No Boilerplate."),
			breaks(2),
			markup.Raw("At heart I'm still a software developer, I'll re-use 100 libraries to avoid writing 10 lines of code - standing on the shoulders of giants is the only way I know how I get around."),
			markup.Br(),
			markup.Raw("But I've looked for a way to mark my videos and stories as being made by humans, not AI, and I can't find one that works in exactly the way I want."),
			markup.Br(),
			markup.Raw("I don't want something that says 'NO AI USED', signposts that are negative and judgemental, nor a '100% human made' guarantee - what would that even MEAN these days?"),
			markup.Br(),
			markup.Raw("I want a positive mark."),
			breaks(2),
			markup.Raw("I have many issues with the options I've seen so far, from having multiple logos (which is confusing) to the fixation on AI being inherently evil (this will not always be the case)."),
			markup.Br(),
			markup.Raw("My root concern with these methods is that they are negative. `AI = bad`. But I think the correct way to present this is `human = good`."),
			markup.Br(),
		)
	})
}

func footer() markup.Node {
	return markup.Group{
		breaks(4),
		markup.E("p", markup.Attrs("class", "text-xs"), markup.Raw("Brainmade is a NAMTAO production, made with <3 in 2024")),
	}
}

func creditsHeading() markup.Node {
	return markup.E("h2", markup.Attrs("class", "text-3xl"), markup.Raw("Credits"))
}

func creditsList() markup.Node {
	return markup.E("ul", nil,
		markup.E("li", nil,
			markup.Raw(`Logo based on "Human" by JunGSa from `),
			underline("https://thenounproject.com/browse/icons/term/human/", markup.Raw("Noun Project")),
		),
		markup.E("li", nil,
			markup.Raw(`And "seed" by Adrian Syauqi from `),
			underline("https://thenounproject.com/browse/icons/term/seed/", markup.Raw("Noun Project")),
		),
	)
}

func acknowledgements() markup.Node {
	return markup.Group{markup.Br(), markdownBlock(thanksSource)}
}

// anchoredConverter wraps rendered Markdown in a div whose id comes from the
// front matter "id" key.
type anchoredConverter struct {
	r *renderer.Renderer
}

func (c anchoredConverter) Convert(src []byte) ([]byte, error) {
	res, err := c.r.Render(src)
	if err != nil {
		return nil, err
	}
	id, _ := res.Meta["id"].(string)
	if id == "" {
		return res.HTML, nil
	}
	return markup.E("div", markup.Attrs("id", id), markup.Raw(res.HTML)).AppendHTML(nil), nil
}

func markdownBlock(src string) markup.Node {
	return markup.MD(anchoredConverter{r: markdown}, src)
}
