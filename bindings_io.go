package lineedit

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// namedActions enumerates the subset of Action values that have a
// stable, human-readable name and can therefore round-trip through a
// text export. Write actions have no entry: ExportBindings leaves out
// every binding to a Write action, and ImportBindings cannot produce
// one.
var namedActions = []struct {
	name   string
	action Action
}{
	{"accept", Accept()},
	{"cancel", Cancel()},
	{"suggest_forward", Suggest(DirectionForward)},
	{"suggest_backward", Suggest(DirectionBackward)},
	{"move_char_forward", Move(RangeSingle, DirectionForward)},
	{"move_char_backward", Move(RangeSingle, DirectionBackward)},
	{"move_word_forward", Move(RangeWord, DirectionForward)},
	{"move_word_backward", Move(RangeWord, DirectionBackward)},
	{"move_line_forward", Move(RangeLine, DirectionForward)},
	{"move_line_backward", Move(RangeLine, DirectionBackward)},
	{"delete_char_forward", Delete(RelativeScope(RangeSingle, DirectionForward))},
	{"delete_char_backward", Delete(RelativeScope(RangeSingle, DirectionBackward))},
	{"delete_word_forward", Delete(RelativeScope(RangeWord, DirectionForward))},
	{"delete_word_backward", Delete(RelativeScope(RangeWord, DirectionBackward))},
	{"delete_line_forward", Delete(RelativeScope(RangeLine, DirectionForward))},
	{"delete_line_backward", Delete(RelativeScope(RangeLine, DirectionBackward))},
	{"delete_whole_word", Delete(WholeWordScope())},
	{"delete_whole_line", Delete(WholeLineScope())},
	{"complete_line", Complete(RangeLine)},
	{"complete_word", Complete(RangeWord)},
	{"complete_char", Complete(RangeSingle)},
	{"noop", NoOp()},
}

func actionName(a Action) (string, bool) {
	for _, na := range namedActions {
		if na.action == a {
			return na.name, true
		}
	}
	return "", false
}

func actionByName(name string) (Action, bool) {
	for _, na := range namedActions {
		if na.name == name {
			return na.action, true
		}
	}
	return Action{}, false
}

// chordString renders event in the "ctrl+w", "alt+b", "tab", "a"
// style used by the exported YAML, matching the format produced by
// keybinding exporters elsewhere in the ecosystem.
func chordString(event Event) string {
	var mods []string
	if event.Mods.has(ModCtrl) {
		mods = append(mods, "ctrl")
	}
	if event.Mods.has(ModAlt) {
		mods = append(mods, "alt")
	}
	if event.Mods.has(ModShift) {
		mods = append(mods, "shift")
	}

	base := keyName(event)
	if len(mods) == 0 {
		return base
	}
	return strings.Join(mods, "+") + "+" + base
}

func keyName(event Event) string {
	switch event.Key {
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyBackTab:
		return "backtab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyChar:
		return string(event.Rune)
	default:
		return "other"
	}
}

var namedKeys = map[string]Key{
	"enter":    KeyEnter,
	"esc":      KeyEsc,
	"tab":      KeyTab,
	"backtab":  KeyBackTab,
	"backspace": KeyBackspace,
	"delete":   KeyDelete,
	"right":    KeyRight,
	"left":     KeyLeft,
	"up":       KeyUp,
	"down":     KeyDown,
	"home":     KeyHome,
	"end":      KeyEnd,
}

// parseChord is the inverse of chordString.
func parseChord(s string) (Event, error) {
	parts := strings.Split(s, "+")
	var mods Modifiers
	for len(parts) > 1 {
		switch parts[0] {
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		default:
			return Event{}, fmt.Errorf("lineedit: unknown modifier %q in chord %q", parts[0], s)
		}
		parts = parts[1:]
	}

	base := parts[0]
	if k, ok := namedKeys[base]; ok {
		return Event{Key: k, Mods: mods}, nil
	}
	runes := []rune(base)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("lineedit: unrecognized key %q in chord %q", base, s)
	}
	return Event{Key: KeyChar, Rune: runes[0], Mods: mods}, nil
}

// BindingsExport is the serializable form of a KeyMap: one entry per
// bound action, each with the list of chords (in "ctrl+w" form) bound
// to it. It round-trips losslessly for every Action that has a name
// (see namedActions).
type BindingsExport struct {
	Bindings map[string][]string `yaml:"bindings"`
	Metadata BindingsMetadata    `yaml:"metadata,omitempty"`
}

// BindingsMetadata carries provenance about an export, mirroring the
// metadata block attached by other keybinding exporters in this
// ecosystem.
type BindingsMetadata struct {
	ExportedAt time.Time `yaml:"exported_at"`
	DeltaFrom  string    `yaml:"delta_from,omitempty"`
}

// ExportBindings converts km into its serializable form. When
// deltaOnly is true, only entries that differ from base are included;
// base is typically DefaultBindingsTable().
func ExportBindings(km KeyMap, deltaOnly bool, base KeyMap) BindingsExport {
	grouped := map[string][]string{}
	for event, action := range km {
		name, ok := actionName(action)
		if !ok {
			continue
		}
		if deltaOnly {
			if baseAction, ok := base[event]; ok && baseAction == action {
				continue
			}
		}
		grouped[name] = append(grouped[name], chordString(event))
	}
	for name := range grouped {
		sort.Strings(grouped[name])
	}

	export := BindingsExport{Bindings: grouped, Metadata: BindingsMetadata{ExportedAt: time.Now()}}
	if deltaOnly {
		export.Metadata.DeltaFrom = "default"
	}
	return export
}

// ToYAML renders export as YAML text.
func (export BindingsExport) ToYAML() (string, error) {
	out, err := yaml.Marshal(export)
	if err != nil {
		return "", fmt.Errorf("lineedit: marshal bindings: %w", err)
	}
	return string(out), nil
}

// ImportBindings parses YAML text produced by ToYAML (or hand-written
// in the same shape) into a KeyMap.
func ImportBindings(text string) (KeyMap, error) {
	var export BindingsExport
	if err := yaml.Unmarshal([]byte(text), &export); err != nil {
		return nil, fmt.Errorf("lineedit: unmarshal bindings: %w", err)
	}

	km := KeyMap{}
	for name, chords := range export.Bindings {
		action, ok := actionByName(name)
		if !ok {
			return nil, fmt.Errorf("lineedit: unknown action %q in bindings import", name)
		}
		for _, chord := range chords {
			event, err := parseChord(chord)
			if err != nil {
				return nil, err
			}
			km[event] = action
		}
	}
	return km, nil
}

// DefaultBindingsTable returns a concrete, enumerable snapshot of the
// context-free portion of the default key table (§4.3), suitable as
// the base for a delta export. The context-sensitive "complete at end
// of line" entries (Right, End, Ctrl-F, Alt-F) are represented by
// their Move variant, matching behavior when the cursor is not at the
// end of the line.
func DefaultBindingsTable() KeyMap {
	return KeyMap{
		{Key: KeyEnter}:                         Accept(),
		{Key: KeyEsc}:                           Cancel(),
		{Key: KeyTab}:                           Suggest(DirectionForward),
		{Key: KeyBackTab}:                       Suggest(DirectionBackward),
		{Key: KeyBackspace}:                     Delete(RelativeScope(RangeSingle, DirectionBackward)),
		{Key: KeyDelete}:                        Delete(RelativeScope(RangeSingle, DirectionForward)),
		{Key: KeyRight}:                         Move(RangeSingle, DirectionForward),
		{Key: KeyLeft}:                          Move(RangeSingle, DirectionBackward),
		{Key: KeyHome}:                          Move(RangeLine, DirectionBackward),
		{Key: KeyEnd}:                           Move(RangeLine, DirectionForward),
		{Key: KeyChar, Rune: 'm', Mods: ModCtrl}: Accept(),
		{Key: KeyChar, Rune: 'd', Mods: ModCtrl}: Accept(),
		{Key: KeyChar, Rune: 'c', Mods: ModCtrl}: Cancel(),
		{Key: KeyChar, Rune: 'b', Mods: ModCtrl}: Move(RangeSingle, DirectionBackward),
		{Key: KeyChar, Rune: 'f', Mods: ModCtrl}: Move(RangeSingle, DirectionForward),
		{Key: KeyChar, Rune: 'a', Mods: ModCtrl}: Move(RangeLine, DirectionBackward),
		{Key: KeyChar, Rune: 'e', Mods: ModCtrl}: Move(RangeLine, DirectionForward),
		{Key: KeyChar, Rune: 'j', Mods: ModCtrl}: Delete(RelativeScope(RangeWord, DirectionBackward)),
		{Key: KeyChar, Rune: 'k', Mods: ModCtrl}: Delete(RelativeScope(RangeWord, DirectionForward)),
		{Key: KeyChar, Rune: 'h', Mods: ModCtrl}: Delete(RelativeScope(RangeLine, DirectionBackward)),
		{Key: KeyChar, Rune: 'l', Mods: ModCtrl}: Delete(RelativeScope(RangeLine, DirectionForward)),
		{Key: KeyChar, Rune: 'w', Mods: ModCtrl}: Delete(WholeWordScope()),
		{Key: KeyChar, Rune: 'u', Mods: ModCtrl}: Delete(WholeLineScope()),
		{Key: KeyChar, Rune: 'b', Mods: ModAlt}:  Move(RangeWord, DirectionBackward),
		{Key: KeyChar, Rune: 'f', Mods: ModAlt}:  Move(RangeWord, DirectionForward),
	}
}
