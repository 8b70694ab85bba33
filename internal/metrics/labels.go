// Package metrics holds the prometheus collectors of the indexer.
package metrics

const namespace = "blockinsight7000"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
