package document

import "github.com/cyb3rnet/xhtml/pkg/markup"

// Content-bearing constructors accept attributes (markup.Attr, markup.Attrs,
// map[string]string) and content (string, *markup.Node, markup.Content, nil)
// in any order. Self-closing constructors accept attributes only.

// Document structure

func (d *Document) Html(args ...any) (*markup.Node, error)     { return d.Build("html", false, args...) }
func (d *Document) Head(args ...any) (*markup.Node, error)     { return d.Build("head", false, args...) }
func (d *Document) Body(args ...any) (*markup.Node, error)     { return d.Build("body", false, args...) }
func (d *Document) Title(args ...any) (*markup.Node, error)    { return d.Build("title", false, args...) }
func (d *Document) Base(attrs ...markup.Attr) *markup.Node     { return d.void("base", attrs) }
func (d *Document) Meta(attrs ...markup.Attr) *markup.Node     { return d.void("meta", attrs) }
func (d *Document) Link(attrs ...markup.Attr) *markup.Node     { return d.void("link", attrs) }
func (d *Document) Style(args ...any) (*markup.Node, error)    { return d.Build("style", false, args...) }
func (d *Document) Script(args ...any) (*markup.Node, error)   { return d.Build("script", false, args...) }
func (d *Document) Noscript(args ...any) (*markup.Node, error) { return d.Build("noscript", false, args...) }
func (d *Document) Template(args ...any) (*markup.Node, error) { return d.Build("template", false, args...) }

// Sectioning and headings

func (d *Document) Header(args ...any) (*markup.Node, error)  { return d.Build("header", false, args...) }
func (d *Document) Footer(args ...any) (*markup.Node, error)  { return d.Build("footer", false, args...) }
func (d *Document) Main(args ...any) (*markup.Node, error)    { return d.Build("main", false, args...) }
func (d *Document) Nav(args ...any) (*markup.Node, error)     { return d.Build("nav", false, args...) }
func (d *Document) Section(args ...any) (*markup.Node, error) { return d.Build("section", false, args...) }
func (d *Document) Article(args ...any) (*markup.Node, error) { return d.Build("article", false, args...) }
func (d *Document) Aside(args ...any) (*markup.Node, error)   { return d.Build("aside", false, args...) }
func (d *Document) Address(args ...any) (*markup.Node, error) { return d.Build("address", false, args...) }
func (d *Document) H1(args ...any) (*markup.Node, error)      { return d.Build("h1", false, args...) }
func (d *Document) H2(args ...any) (*markup.Node, error)      { return d.Build("h2", false, args...) }
func (d *Document) H3(args ...any) (*markup.Node, error)      { return d.Build("h3", false, args...) }
func (d *Document) H4(args ...any) (*markup.Node, error)      { return d.Build("h4", false, args...) }
func (d *Document) H5(args ...any) (*markup.Node, error)      { return d.Build("h5", false, args...) }
func (d *Document) H6(args ...any) (*markup.Node, error)      { return d.Build("h6", false, args...) }
func (d *Document) Hgroup(args ...any) (*markup.Node, error)  { return d.Build("hgroup", false, args...) }

// Block text

func (d *Document) Div(args ...any) (*markup.Node, error)        { return d.Build("div", false, args...) }
func (d *Document) P(args ...any) (*markup.Node, error)          { return d.Build("p", false, args...) }
func (d *Document) Pre(args ...any) (*markup.Node, error)        { return d.Build("pre", false, args...) }
func (d *Document) Blockquote(args ...any) (*markup.Node, error) { return d.Build("blockquote", false, args...) }
func (d *Document) Ul(args ...any) (*markup.Node, error)         { return d.Build("ul", false, args...) }
func (d *Document) Ol(args ...any) (*markup.Node, error)         { return d.Build("ol", false, args...) }
func (d *Document) Li(args ...any) (*markup.Node, error)         { return d.Build("li", false, args...) }
func (d *Document) Dl(args ...any) (*markup.Node, error)         { return d.Build("dl", false, args...) }
func (d *Document) Dt(args ...any) (*markup.Node, error)         { return d.Build("dt", false, args...) }
func (d *Document) Dd(args ...any) (*markup.Node, error)         { return d.Build("dd", false, args...) }
func (d *Document) Hr(attrs ...markup.Attr) *markup.Node         { return d.void("hr", attrs) }
func (d *Document) Figure(args ...any) (*markup.Node, error)     { return d.Build("figure", false, args...) }
func (d *Document) Figcaption(args ...any) (*markup.Node, error) { return d.Build("figcaption", false, args...) }
func (d *Document) Ins(args ...any) (*markup.Node, error)        { return d.Build("ins", false, args...) }
func (d *Document) Del(args ...any) (*markup.Node, error)        { return d.Build("del", false, args...) }

// Inline text

func (d *Document) A(args ...any) (*markup.Node, error)       { return d.Build("a", false, args...) }
func (d *Document) Span(args ...any) (*markup.Node, error)    { return d.Build("span", false, args...) }
func (d *Document) Bdo(args ...any) (*markup.Node, error)     { return d.Build("bdo", false, args...) }
func (d *Document) Bdi(args ...any) (*markup.Node, error)     { return d.Build("bdi", false, args...) }
func (d *Document) Br(attrs ...markup.Attr) *markup.Node      { return d.void("br", attrs) }
func (d *Document) Wbr(attrs ...markup.Attr) *markup.Node     { return d.void("wbr", attrs) }
func (d *Document) Em(args ...any) (*markup.Node, error)      { return d.Build("em", false, args...) }
func (d *Document) Strong(args ...any) (*markup.Node, error)  { return d.Build("strong", false, args...) }
func (d *Document) Dfn(args ...any) (*markup.Node, error)     { return d.Build("dfn", false, args...) }
func (d *Document) Code(args ...any) (*markup.Node, error)    { return d.Build("code", false, args...) }
func (d *Document) Samp(args ...any) (*markup.Node, error)    { return d.Build("samp", false, args...) }
func (d *Document) Kbd(args ...any) (*markup.Node, error)     { return d.Build("kbd", false, args...) }
func (d *Document) Var(args ...any) (*markup.Node, error)     { return d.Build("var", false, args...) }
func (d *Document) Cite(args ...any) (*markup.Node, error)    { return d.Build("cite", false, args...) }
func (d *Document) Abbr(args ...any) (*markup.Node, error)    { return d.Build("abbr", false, args...) }
func (d *Document) Acronym(args ...any) (*markup.Node, error) { return d.Build("acronym", false, args...) }
func (d *Document) Q(args ...any) (*markup.Node, error)       { return d.Build("q", false, args...) }
func (d *Document) Sub(args ...any) (*markup.Node, error)     { return d.Build("sub", false, args...) }
func (d *Document) Sup(args ...any) (*markup.Node, error)     { return d.Build("sup", false, args...) }
func (d *Document) Tt(args ...any) (*markup.Node, error)      { return d.Build("tt", false, args...) }
func (d *Document) I(args ...any) (*markup.Node, error)       { return d.Build("i", false, args...) }
func (d *Document) B(args ...any) (*markup.Node, error)       { return d.Build("b", false, args...) }
func (d *Document) U(args ...any) (*markup.Node, error)       { return d.Build("u", false, args...) }
func (d *Document) S(args ...any) (*markup.Node, error)       { return d.Build("s", false, args...) }
func (d *Document) Big(args ...any) (*markup.Node, error)     { return d.Build("big", false, args...) }
func (d *Document) Small(args ...any) (*markup.Node, error)   { return d.Build("small", false, args...) }
func (d *Document) Mark(args ...any) (*markup.Node, error)    { return d.Build("mark", false, args...) }
func (d *Document) Time(args ...any) (*markup.Node, error)    { return d.Build("time", false, args...) }
func (d *Document) Data(args ...any) (*markup.Node, error)    { return d.Build("data", false, args...) }
func (d *Document) Ruby(args ...any) (*markup.Node, error)    { return d.Build("ruby", false, args...) }
func (d *Document) Rt(args ...any) (*markup.Node, error)      { return d.Build("rt", false, args...) }
func (d *Document) Rp(args ...any) (*markup.Node, error)      { return d.Build("rp", false, args...) }

// Embedded content

func (d *Document) Object(args ...any) (*markup.Node, error)  { return d.Build("object", false, args...) }
func (d *Document) Param(attrs ...markup.Attr) *markup.Node   { return d.void("param", attrs) }
func (d *Document) Img(attrs ...markup.Attr) *markup.Node     { return d.void("img", attrs) }
func (d *Document) Map(args ...any) (*markup.Node, error)     { return d.Build("map", false, args...) }
func (d *Document) Area(attrs ...markup.Attr) *markup.Node    { return d.void("area", attrs) }
func (d *Document) Iframe(args ...any) (*markup.Node, error)  { return d.Build("iframe", false, args...) }
func (d *Document) Embed(attrs ...markup.Attr) *markup.Node   { return d.void("embed", attrs) }
func (d *Document) Picture(args ...any) (*markup.Node, error) { return d.Build("picture", false, args...) }
func (d *Document) Source(attrs ...markup.Attr) *markup.Node  { return d.void("source", attrs) }
func (d *Document) Video(args ...any) (*markup.Node, error)   { return d.Build("video", false, args...) }
func (d *Document) Audio(args ...any) (*markup.Node, error)   { return d.Build("audio", false, args...) }
func (d *Document) Track(attrs ...markup.Attr) *markup.Node   { return d.void("track", attrs) }
func (d *Document) Canvas(args ...any) (*markup.Node, error)  { return d.Build("canvas", false, args...) }
func (d *Document) Svg(args ...any) (*markup.Node, error)     { return d.Build("svg", false, args...) }
func (d *Document) Math(args ...any) (*markup.Node, error)    { return d.Build("math", false, args...) }

// Forms

func (d *Document) Form(args ...any) (*markup.Node, error)          { return d.Build("form", false, args...) }
func (d *Document) Label(args ...any) (*markup.Node, error)         { return d.Build("label", false, args...) }
func (d *Document) Input(attrs ...markup.Attr) *markup.Node         { return d.void("input", attrs) }
func (d *Document) Textarea(args ...any) (*markup.Node, error)      { return d.Build("textarea", false, args...) }
func (d *Document) Select(args ...any) (*markup.Node, error)        { return d.Build("select", false, args...) }
func (d *Document) Option(args ...any) (*markup.Node, error)        { return d.Build("option", false, args...) }
func (d *Document) Optgroup(args ...any) (*markup.Node, error)      { return d.Build("optgroup", false, args...) }
func (d *Document) Fieldset(args ...any) (*markup.Node, error)      { return d.Build("fieldset", false, args...) }
func (d *Document) Legend(args ...any) (*markup.Node, error)        { return d.Build("legend", false, args...) }
func (d *Document) Button(args ...any) (*markup.Node, error)        { return d.Build("button", false, args...) }
func (d *Document) Datalist(args ...any) (*markup.Node, error)      { return d.Build("datalist", false, args...) }
// OutputElement builds an output element; Output writes the document.
func (d *Document) OutputElement(args ...any) (*markup.Node, error) { return d.Build("output", false, args...) }
func (d *Document) Progress(args ...any) (*markup.Node, error)      { return d.Build("progress", false, args...) }
func (d *Document) Meter(args ...any) (*markup.Node, error)         { return d.Build("meter", false, args...) }

// Tables

func (d *Document) Table(args ...any) (*markup.Node, error)    { return d.Build("table", false, args...) }
func (d *Document) Caption(args ...any) (*markup.Node, error)  { return d.Build("caption", false, args...) }
func (d *Document) Thead(args ...any) (*markup.Node, error)    { return d.Build("thead", false, args...) }
func (d *Document) Tfoot(args ...any) (*markup.Node, error)    { return d.Build("tfoot", false, args...) }
func (d *Document) Tbody(args ...any) (*markup.Node, error)    { return d.Build("tbody", false, args...) }
func (d *Document) Colgroup(args ...any) (*markup.Node, error) { return d.Build("colgroup", false, args...) }
func (d *Document) Col(attrs ...markup.Attr) *markup.Node      { return d.void("col", attrs) }
func (d *Document) Tr(args ...any) (*markup.Node, error)       { return d.Build("tr", false, args...) }
func (d *Document) Th(args ...any) (*markup.Node, error)       { return d.Build("th", false, args...) }
func (d *Document) Td(args ...any) (*markup.Node, error)       { return d.Build("td", false, args...) }

// Interactive

func (d *Document) Details(args ...any) (*markup.Node, error) { return d.Build("details", false, args...) }
func (d *Document) Summary(args ...any) (*markup.Node, error) { return d.Build("summary", false, args...) }
func (d *Document) Dialog(args ...any) (*markup.Node, error)  { return d.Build("dialog", false, args...) }
func (d *Document) Menu(args ...any) (*markup.Node, error)    { return d.Build("menu", false, args...) }
