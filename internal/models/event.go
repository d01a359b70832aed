package models

// CropEvent represents a crop-record lifecycle event published to Kafka.
type CropEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Username  string `json:"username"`  // Username is the owner of the crop record.
	CropName  string `json:"crop_name"` // CropName is the name of the saved crop.
	Disease   string `json:"disease"`   // Disease is the label attached to the record, empty if none.
	Operation string `json:"operation"` // Operation describes the event type, e.g. "crop_saved".
}
