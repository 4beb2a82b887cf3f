package report

import "github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"

// Snapshot 文档的完整对外视图，HTTP 与命令行共用
type Snapshot struct {
	Origin   Origin       `json:"origin"`
	Sections []Section    `json:"sections"`
	Blocks   []block.View `json:"blocks"`
	Issues   []Issue      `json:"issues"`
	Text     string       `json:"text"`
}

// Snapshot 展开文档，切片字段保证非 nil
func (d Document) Snapshot() Snapshot {
	s := Snapshot{
		Origin:   d.Origin,
		Sections: d.Sections,
		Blocks:   block.EncodeAll(d.Blocks),
		Issues:   d.Issues,
		Text:     d.Text(),
	}
	if s.Sections == nil {
		s.Sections = []Section{}
	}
	if s.Issues == nil {
		s.Issues = []Issue{}
	}
	return s
}
