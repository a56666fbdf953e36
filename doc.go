// Package markup renders lightweight inline Markdown (headers, bold, italic,
// links and bare URLs) as styled terminal text.
//
// Markup is described by an ordered list of rules. Each rule is data: a
// regular expression, an optional capture-group replacement template, a style
// and a flag marking rules that produce links. Rendering happens in two
// steps:
//
//   - Apply runs the rules in order and splits the input into spans. Every
//     rule re-scans every span produced so far, so matches accumulate rules
//     and a later rule can style text inside an earlier match. The raw texts
//     of the spans always concatenate back to the input.
//   - Coalesce resolves each span to styled Text and merges adjacent plain
//     spans into one render group, while every link span stays a group of its
//     own so it can be activated.
//
// Example:
//
//	groups := markup.Parse("see [site](https://example.com) **now**", markup.DefaultRules())
//	out := markup.NewANSIRenderer(os.Stdout, 80, markup.DefaultTheme(), markup.WithOSC8(true))
//	if err := out.WriteGroups(groups); err != nil {
//		log.Fatal(err)
//	}
//	if err := out.Flush(); err != nil {
//		log.Fatal(err)
//	}
//
// Malformed markup never fails: rules whose patterns do not compile simply
// never match, and activating a link without a usable URL does nothing.
package markup
