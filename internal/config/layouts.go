package config

import "github.com/mj1618/tilerc/internal/model"

// BasicStyle is the styling shared by every tiling layout. The stack
// borders mirror the focus and normal borders.
func BasicStyle(t Theme) model.LayoutStyle {
	return model.LayoutStyle{
		Margin:            margin,
		BorderWidth:       borderWidth,
		BorderFocus:       t.BorderFocus,
		BorderNormal:      t.BorderNormal,
		BorderFocusStack:  t.BorderFocus,
		BorderNormalStack: t.BorderNormal,
	}
}

// Layouts returns the layouts cycled by mod+Tab, in order.
func Layouts(t Theme) []model.Layout {
	style := BasicStyle(t)
	return []model.Layout{
		{Name: "columns", Style: style},
		{Name: "bsp", Style: style},
		{Name: "max", Style: style},
		{Name: "zoomy", Style: style},
	}
}

// DefaultFloatRules are the rules every floating layout starts from:
// transient dialogs, fixed-size windows, splash screens and progress
// windows.
var DefaultFloatRules = []model.Match{
	{Transient: true},
	{FixedSize: true},
	{FixedRatio: true},
	{WMType: "utility"},
	{WMType: "notification"},
	{WMType: "toolbar"},
	{WMType: "splash"},
	{WMType: "dialog"},
	{WMClass: "file_progress"},
	{WMClass: "confirm"},
	{WMClass: "dialog"},
	{WMClass: "download"},
	{WMClass: "error"},
	{WMClass: "notification"},
	{WMClass: "splash"},
	{WMClass: "toolbar"},
}

// FloatingLayout returns the floating rules. Run xprop to see the
// WM_CLASS and WM_NAME of an X client.
func FloatingLayout(t Theme) model.FloatingLayout {
	rules := make([]model.Match, 0, len(DefaultFloatRules)+6)
	rules = append(rules, DefaultFloatRules...)
	rules = append(rules,
		model.Match{WMClass: "confirmreset"}, // gitk
		model.Match{WMClass: "makebranch"},   // gitk
		model.Match{WMClass: "maketag"},      // gitk
		model.Match{WMClass: "ssh-askpass"},  // ssh-askpass
		model.Match{Title: "branchdialog"},   // gitk
		model.Match{Title: "pinentry"},       // GPG key password entry
	)
	return model.FloatingLayout{
		Rules:        rules,
		BorderWidth:  borderWidth,
		BorderFocus:  t.BorderFocus,
		BorderNormal: t.BorderNormal,
	}
}
