package models

// Snapshot is the whole ledger aggregate: every mutation rewrites it to the
// durable store in full. The three collections keep their in-memory order —
// products in insertion order, records most-recent-first.
type Snapshot struct {
	Products        []*Product        `json:"products"`
	InboundRecords  []*InboundRecord  `json:"inbound_records"`
	OutboundRecords []*OutboundRecord `json:"outbound_records"`
}

// NewSnapshot returns an empty aggregate with non-nil collections so the
// serialized form always contains three arrays, never nulls.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Products:        []*Product{},
		InboundRecords:  []*InboundRecord{},
		OutboundRecords: []*OutboundRecord{},
	}
}

// Normalize replaces nil collections with empty ones. Applied after loading
// a snapshot so the rest of the ledger never checks for nil slices.
func (s *Snapshot) Normalize() {
	if s.Products == nil {
		s.Products = []*Product{}
	}
	if s.InboundRecords == nil {
		s.InboundRecords = []*InboundRecord{}
	}
	if s.OutboundRecords == nil {
		s.OutboundRecords = []*OutboundRecord{}
	}
}
