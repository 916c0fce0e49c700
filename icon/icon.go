// Package icon renders UI symbols in the variant picked by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/epibrowse/epibrowse/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every accepted icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Search
	Link
	Show
	Episode
	Mark
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", kaomoji: "(・_・)", squares: "🟨"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "🟦"},
	Link:     {emoji: "🔗", nerd: "", plain: "@", kaomoji: "(°▽°)", squares: "🟪"},
	Show:     {emoji: "📺", nerd: "", plain: "#", kaomoji: "(￣▽￣)", squares: "🟫"},
	Episode:  {emoji: "🎞", nerd: "", plain: "*", kaomoji: "(^_^)", squares: "⬜"},
	Mark:     {emoji: "✅", nerd: "", plain: "+", kaomoji: "(*^▽^*)", squares: "🟧"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
