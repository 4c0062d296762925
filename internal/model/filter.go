package model

import "strings"

// FilterKeys returns the bindings whose description, key name or action
// contains text (case-insensitive) and whose modifiers include mods. An
// empty text and ModNone return keys unchanged.
func FilterKeys(keys []Key, text string, mods Modifier) []Key {
	if text == "" && mods == ModNone {
		return keys
	}
	textLower := strings.ToLower(text)
	result := []Key{}
	for _, k := range keys {
		if !k.Modifiers.Has(mods) {
			continue
		}
		if text != "" && !textMatchesKey(k, textLower) {
			continue
		}
		result = append(result, k)
	}
	return result
}

func textMatchesKey(k Key, textLower string) bool {
	return strings.Contains(strings.ToLower(k.Desc), textLower) ||
		strings.Contains(strings.ToLower(k.Name), textLower) ||
		strings.Contains(strings.ToLower(k.Action.String()), textLower)
}

// KeysForGroup returns the bindings whose action targets the named group.
func KeysForGroup(keys []Key, group string) []Key {
	result := []Key{}
	for _, k := range keys {
		if k.Action.Kind != ActionGroup && k.Action.Kind != ActionToGroup {
			continue
		}
		if len(k.Action.Args) > 0 && k.Action.Args[0] == group {
			result = append(result, k)
		}
	}
	return result
}
