package schema

// Order records written by earlier application versions stored the
// identifier under several different names. The guessing is confined to
// this adapter; everything else reads CanonicalID only.
type legacyOrderIDs struct {
	LegacyOrderID string `json:"orderId,omitempty"`
	LegacyCode    string `json:"code,omitempty"`
	LegacyMongoID string `json:"_id,omitempty"`
}

// CanonicalID resolves the order identifier, preferring the canonical
// field and falling back through the legacy names in write-date order.
func (o OrderV1) CanonicalID() string {
	for _, id := range []string{
		o.ID, o.LegacyOrderID, o.LegacyCode, o.LegacyMongoID,
	} {
		if id != "" {
			return id
		}
	}
	return ""
}
