package ergast

// Table extracts the list nested under MRData -> {table} -> {list} in an
// Ergast response envelope. A missing or mistyped level yields an empty list
// rather than an error.
func Table(data map[string]any, table, list string) []any {
	mr, _ := data["MRData"].(map[string]any)
	tbl, _ := mr[table].(map[string]any)
	items, _ := tbl[list].([]any)
	if items == nil {
		items = []any{}
	}
	return items
}
