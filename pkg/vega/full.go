package vega

// baseVega assembles the shared full-Vega skeleton. Builders append
// data, scales, and marks sections.
func baseVega(p Params) map[string]any {
	body := map[string]any{
		"$schema":    schemaVega,
		"width":      p.Width,
		"height":     p.Height,
		"padding":    5,
		"background": "white",
	}
	if p.Title != "" {
		body["title"] = map[string]any{"text": p.Title}
	}
	return body
}

// sig, val, and fld are shorthands for the three reference forms full
// Vega mark encodings use constantly.
func sig(expr string) map[string]any {
	return map[string]any{"signal": expr}
}

func val(v any) map[string]any {
	return map[string]any{"value": v}
}

func fld(f string) map[string]any {
	return map[string]any{"field": f}
}

// scaled binds a field through a named scale.
func scaled(scale, field string) map[string]any {
	return map[string]any{"scale": scale, "field": field}
}

// stratified is the stratify transform every hierarchical type starts
// with: it turns the flat id/parent records into a tree. The engine
// rejects inputs that do not form a single-rooted tree; that rejection
// surfaces as a render failure, matching the loose input contract.
func stratified() map[string]any {
	return map[string]any{
		"type":      "stratify",
		"key":       "id",
		"parentKey": "parent",
	}
}
