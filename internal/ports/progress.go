package ports

// ProgressEvent reports batch progress to a websocket room.
type ProgressEvent struct {
	RoomID string `json:"-"`
	Job    string `json:"job"`
	Done   int    `json:"done"`
	Failed int    `json:"failed"`
	Total  int    `json:"total"`
	Final  bool   `json:"final"`
}

type ProgressSink interface {
	Publish(ev ProgressEvent)
}
