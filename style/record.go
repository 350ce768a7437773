package style

// Side indexes the four edge arrays of a Record in CSS shorthand order.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < SideTop || s > SideLeft {
		return "side?"
	}
	return sideNames[s]
}

// Sides lists edges in shorthand order.
var Sides = [...]Side{SideTop, SideRight, SideBottom, SideLeft}

// Record is a computed style: one value per supported property. The zero
// Record has every property set to inherit, which is what a rule that
// declares nothing contributes.
//
// Records are plain values. They are comparable with == and may be shared
// freely between goroutines as long as nobody writes to a shared copy.
type Record struct {
	Display        Display        `yaml:"display"`
	WhiteSpace     WhiteSpace     `yaml:"white-space"`
	TextAlign      TextAlign      `yaml:"text-align"`
	TextAlignLast  TextAlign      `yaml:"text-align-last"`
	VerticalAlign  VerticalAlign  `yaml:"vertical-align"`
	TextDecoration TextDecoration `yaml:"text-decoration"`
	TextTransform  TextTransform  `yaml:"text-transform"`
	Hyphenation    Hyphenation    `yaml:"hyphens"`

	FontStyle     FontStyle  `yaml:"font-style"`
	FontWeight    FontWeight `yaml:"font-weight"`
	FontFamily    FontFamily `yaml:"font-family"`
	FontName      string     `yaml:"font-name"`
	FontSize      Length     `yaml:"font-size"`
	LineHeight    Length     `yaml:"line-height"`
	LetterSpacing Length     `yaml:"letter-spacing"`
	TextIndent    Length     `yaml:"text-indent"`

	Width     Length    `yaml:"width"`
	Height    Length    `yaml:"height"`
	MinWidth  Length    `yaml:"min-width"`
	MinHeight Length    `yaml:"min-height"`
	Margin    [4]Length `yaml:"margin,flow"`
	Padding   [4]Length `yaml:"padding,flow"`

	Color                Length               `yaml:"color"`
	BackgroundColor      Length               `yaml:"background-color"`
	BackgroundImage      string               `yaml:"background-image"`
	BackgroundRepeat     BackgroundRepeat     `yaml:"background-repeat"`
	BackgroundAttachment BackgroundAttachment `yaml:"background-attachment"`
	BackgroundPosition   BackgroundPosition   `yaml:"background-position"`

	BorderStyle    [4]BorderStyle `yaml:"border-style,flow"`
	BorderWidth    [4]Length      `yaml:"border-width,flow"`
	BorderColor    [4]Length      `yaml:"border-color,flow"`
	BorderCollapse BorderCollapse `yaml:"border-collapse"`
	BorderSpacing  [2]Length      `yaml:"border-spacing,flow"`

	PageBreakBefore PageBreak     `yaml:"page-break-before"`
	PageBreakAfter  PageBreak     `yaml:"page-break-after"`
	PageBreakInside PageBreak     `yaml:"page-break-inside"`
	Orphans         OrphansWidows `yaml:"orphans"`
	Widows          OrphansWidows `yaml:"widows"`

	ListStyleType     ListStyleType     `yaml:"list-style-type"`
	ListStylePosition ListStylePosition `yaml:"list-style-position"`

	Hint RenderingHint `yaml:"-cr-hint"`
}

// NewRecord returns a record with every property set to inherit.
func NewRecord() Record {
	return Record{}
}

// IsEmpty reports whether no property differs from inherit.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// hasher mixes values the same way for every field kind so that equal
// records always produce the same hash.
type hasher uint32

func (h *hasher) add(v int32) {
	*h = *h*31 + hasher(uint32(v))
}

func (h *hasher) addString(s string) {
	h.add(int32(len(s)))
	for i := 0; i < len(s); i++ {
		h.add(int32(s[i]))
	}
}

func (h *hasher) addLength(l Length) {
	h.add(l.Pack())
}

// Hash returns a style cache key. Lengths contribute through Pack, so
// lengths outside the Pack bit budget may collide, and equal records always
// hash equally.
func (r Record) Hash() uint32 {
	var h hasher

	h.add(int32(r.Display))
	h.add(int32(r.WhiteSpace))
	h.add(int32(r.TextAlign))
	h.add(int32(r.TextAlignLast))
	h.add(int32(r.VerticalAlign))
	h.add(int32(r.TextDecoration))
	h.add(int32(r.TextTransform))
	h.add(int32(r.Hyphenation))

	h.add(int32(r.FontStyle))
	h.add(int32(r.FontWeight))
	h.add(int32(r.FontFamily))
	h.addString(r.FontName)
	h.addLength(r.FontSize)
	h.addLength(r.LineHeight)
	h.addLength(r.LetterSpacing)
	h.addLength(r.TextIndent)

	h.addLength(r.Width)
	h.addLength(r.Height)
	h.addLength(r.MinWidth)
	h.addLength(r.MinHeight)
	for _, s := range Sides {
		h.addLength(r.Margin[s])
		h.addLength(r.Padding[s])
		h.add(int32(r.BorderStyle[s]))
		h.addLength(r.BorderWidth[s])
		h.addLength(r.BorderColor[s])
	}

	h.addLength(r.Color)
	h.addLength(r.BackgroundColor)
	h.addString(r.BackgroundImage)
	h.add(int32(r.BackgroundRepeat))
	h.add(int32(r.BackgroundAttachment))
	h.add(int32(r.BackgroundPosition))

	h.add(int32(r.BorderCollapse))
	h.addLength(r.BorderSpacing[0])
	h.addLength(r.BorderSpacing[1])

	h.add(int32(r.PageBreakBefore))
	h.add(int32(r.PageBreakAfter))
	h.add(int32(r.PageBreakInside))
	h.add(int32(r.Orphans))
	h.add(int32(r.Widows))

	h.add(int32(r.ListStyleType))
	h.add(int32(r.ListStylePosition))

	h.add(int32(r.Hint))
	return uint32(h)
}
