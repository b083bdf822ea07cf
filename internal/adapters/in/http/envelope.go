package http

// envelope is the shape of every JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string, data any) envelope {
	return envelope{Success: true, Message: message, Data: data}
}

func okList[T any](message string, items []T) envelope {
	count := len(items)
	if items == nil {
		items = []T{}
	}
	return envelope{Success: true, Message: message, Count: &count, Data: items}
}

func failure(message string) envelope {
	return envelope{Success: false, Message: message}
}
