// Package palette holds the raw ANSI sequences behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences shared by every palette.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Palette is a set of foreground color prefixes, one per semantic role.
type Palette struct {
	Text           string
	Heading        string
	Emphasis       string
	Strong         string
	EmphasisStrong string
	CodeInline     string
	Strike         string
	LinkText       string
	LinkURL        string
}

func fg(r, g, b int) string {
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

var (
	PaletteDefault = Palette{
		Text:           "",
		Heading:        Bold + fg(97, 175, 239),
		Emphasis:       fg(198, 120, 221),
		Strong:         fg(229, 192, 123),
		EmphasisStrong: fg(224, 108, 117),
		CodeInline:     fg(152, 195, 121),
		Strike:         fg(127, 132, 142),
		LinkText:       fg(86, 182, 194),
		LinkURL:        fg(92, 99, 112),
	}
	PaletteGruvbox = Palette{
		Text:           fg(235, 219, 178),
		Heading:        Bold + fg(250, 189, 47),
		Emphasis:       fg(211, 134, 155),
		Strong:         fg(254, 128, 25),
		EmphasisStrong: fg(251, 73, 52),
		CodeInline:     fg(184, 187, 38),
		Strike:         fg(146, 131, 116),
		LinkText:       fg(131, 165, 152),
		LinkURL:        fg(146, 131, 116),
	}
	PaletteDracula = Palette{
		Text:           fg(248, 248, 242),
		Heading:        Bold + fg(189, 147, 249),
		Emphasis:       fg(241, 250, 140),
		Strong:         fg(255, 184, 108),
		EmphasisStrong: fg(255, 85, 85),
		CodeInline:     fg(80, 250, 123),
		Strike:         fg(98, 114, 164),
		LinkText:       fg(139, 233, 253),
		LinkURL:        fg(98, 114, 164),
	}
	PaletteNord = Palette{
		Text:           fg(216, 222, 233),
		Heading:        Bold + fg(136, 192, 208),
		Emphasis:       fg(180, 142, 173),
		Strong:         fg(235, 203, 139),
		EmphasisStrong: fg(208, 135, 112),
		CodeInline:     fg(163, 190, 140),
		Strike:         fg(76, 86, 106),
		LinkText:       fg(129, 161, 193),
		LinkURL:        fg(76, 86, 106),
	}
	PaletteTokyoNight = Palette{
		Text:           fg(192, 202, 245),
		Heading:        Bold + fg(122, 162, 247),
		Emphasis:       fg(187, 154, 247),
		Strong:         fg(255, 158, 100),
		EmphasisStrong: fg(247, 118, 142),
		CodeInline:     fg(158, 206, 106),
		Strike:         fg(86, 95, 137),
		LinkText:       fg(125, 207, 255),
		LinkURL:        fg(86, 95, 137),
	}
	PaletteSolarizedDark = Palette{
		Text:           fg(131, 148, 150),
		Heading:        Bold + fg(38, 139, 210),
		Emphasis:       fg(108, 113, 196),
		Strong:         fg(181, 137, 0),
		EmphasisStrong: fg(203, 75, 22),
		CodeInline:     fg(133, 153, 0),
		Strike:         fg(88, 110, 117),
		LinkText:       fg(42, 161, 152),
		LinkURL:        fg(88, 110, 117),
	}
	PaletteGithubLight = Palette{
		Text:           fg(36, 41, 47),
		Heading:        Bold + fg(9, 105, 218),
		Emphasis:       fg(130, 80, 223),
		Strong:         fg(149, 56, 0),
		EmphasisStrong: fg(207, 34, 46),
		CodeInline:     fg(17, 99, 41),
		Strike:         fg(110, 119, 129),
		LinkText:       fg(9, 105, 218),
		LinkURL:        fg(110, 119, 129),
	}
)
