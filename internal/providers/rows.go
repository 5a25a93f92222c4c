package providers

// Row is a loosely typed record from the legacy feed. Field names vary by
// endpoint, so access goes through tolerant first-present-key helpers.
type Row map[string]any

// Str returns the first present key rendered as a string.
func (r Row) Str(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if s := ToString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// Num returns the first present key coerced to a number.
func (r Row) Num(keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if f, numOK := ToNumber(v); numOK {
				return f, true
			}
		}
	}
	return 0, false
}

// Int returns the first present key coerced to an int.
func (r Row) Int(keys ...string) (int, bool) {
	f, ok := r.Num(keys...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool returns the first present key coerced to a bool.
func (r Row) Bool(keys ...string) bool {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			return ToBool(v)
		}
	}
	return false
}

// idKeys identify a map as a data row rather than another wrapper.
var idKeys = []string{"id", "ID", "player_id", "person_id", "team_id", "game_id"}

// HasID reports whether the row carries any id-like key with a value.
func (r Row) HasID() bool {
	for _, key := range idKeys {
		if v, ok := r[key]; ok && v != nil && ToString(v) != "" {
			return true
		}
	}
	return false
}

// wrapperKeys are unwrapped in priority order while hunting for the row
// list. The legacy feed nests payloads differently per endpoint/view and
// offers no stable schema to type against.
var wrapperKeys = []string{
	"SiteKit",
	"Scorebar",
	"Schedule",
	"Roster",
	"Standings",
	"GC",
	"Gamesummary",
	"sections",
	"data",
	"results",
	"teams",
	"players",
	"standings",
	"roster",
	"schedule",
	"stats",
}

const maxUnwrapDepth = 8

// ExtractRows walks known wrapper keys until it finds a flat list of row
// maps, identified heuristically by an id-like key on the first element.
// Anything unrecognizable yields an empty slice, never an error.
func ExtractRows(payload any) []Row {
	return extractRows(payload, 0)
}

func extractRows(payload any, depth int) []Row {
	if depth > maxUnwrapDepth {
		return nil
	}

	switch val := payload.(type) {
	case []any:
		if rows := rowsFromList(val); rows != nil {
			return rows
		}
		// A list of wrappers (e.g. sections): descend into each element.
		for _, item := range val {
			if rows := extractRows(item, depth+1); len(rows) > 0 {
				return rows
			}
		}
	case map[string]any:
		for _, key := range wrapperKeys {
			inner, ok := val[key]
			if !ok {
				continue
			}
			if rows := extractRows(inner, depth+1); len(rows) > 0 {
				return rows
			}
		}
	}
	return nil
}

func rowsFromList(list []any) []Row {
	if len(list) == 0 {
		return nil
	}
	first, ok := list[0].(map[string]any)
	if !ok || !Row(first).HasID() {
		return nil
	}

	rows := make([]Row, 0, len(list))
	for _, item := range list {
		if m, isMap := item.(map[string]any); isMap {
			rows = append(rows, Row(m))
		}
	}
	return rows
}
