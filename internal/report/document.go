package report

import (
	"fmt"

	"shiptracker/internal/shipment"
	"shiptracker/internal/stats"
)

// RecordDoc is the serialized form of a shipment record.
type RecordDoc struct {
	Line         int    `json:"line" yaml:"line" msgpack:"line"`
	Timestamp    string `json:"timestamp" yaml:"timestamp" msgpack:"timestamp"`
	Status       string `json:"status" yaml:"status" msgpack:"status"`
	Locale       string `json:"locale,omitempty" yaml:"locale,omitempty" msgpack:"locale,omitempty"`
	LocaleOrigin string `json:"locale_origin" yaml:"locale_origin" msgpack:"locale_origin"`
}

// TransferDoc is the serialized form of a transfer or layover.
type TransferDoc struct {
	Locale   string    `json:"locale,omitempty" yaml:"locale,omitempty" msgpack:"locale,omitempty"`
	From     RecordDoc `json:"from" yaml:"from" msgpack:"from"`
	To       RecordDoc `json:"to" yaml:"to" msgpack:"to"`
	Minutes  int64     `json:"minutes" yaml:"minutes" msgpack:"minutes"`
	Duration string    `json:"duration" yaml:"duration" msgpack:"duration"`
}

// Document is the encoder-neutral shape of a transit report.
type Document struct {
	RecordCount   int           `json:"record_count" yaml:"record_count" msgpack:"record_count"`
	Start         string        `json:"start" yaml:"start" msgpack:"start"`
	End           string        `json:"end" yaml:"end" msgpack:"end"`
	TotalMinutes  int64         `json:"total_minutes" yaml:"total_minutes" msgpack:"total_minutes"`
	TotalDuration string        `json:"total_duration" yaml:"total_duration" msgpack:"total_duration"`
	LongestDelay  TransferDoc   `json:"longest_delay" yaml:"longest_delay" msgpack:"longest_delay"`
	Layovers      []TransferDoc `json:"layovers" yaml:"layovers" msgpack:"layovers"`
	Records       []RecordDoc   `json:"records,omitempty" yaml:"records,omitempty" msgpack:"records,omitempty"`
}

// FormatMinutes renders minutes as [h:m], the way every duration in the report is shown.
func FormatMinutes(minutes int64) string {
	return fmt.Sprintf("[%d:%d]", minutes/60, minutes%60)
}

// NewDocument flattens a summary. Records are included only when withRecords is set.
func NewDocument(s *stats.Summary, withRecords bool) Document {
	doc := Document{
		RecordCount:   s.RecordCount,
		Start:         s.Start.Format(shipment.TimestampLayout),
		End:           s.End.Format(shipment.TimestampLayout),
		TotalMinutes:  s.TotalMinutes,
		TotalDuration: FormatMinutes(s.TotalMinutes),
		LongestDelay:  newTransferDoc(s.LongestDelay, ""),
		Layovers:      make([]TransferDoc, 0, len(s.Layovers)),
	}
	for _, l := range s.Layovers {
		doc.Layovers = append(doc.Layovers, newTransferDoc(l.Transfer, l.Locale.String()))
	}
	if withRecords {
		for _, r := range s.Records {
			doc.Records = append(doc.Records, newRecordDoc(r))
		}
	}
	return doc
}

func newRecordDoc(r shipment.Record) RecordDoc {
	return RecordDoc{
		Line:         r.Line,
		Timestamp:    r.Timestamp.Format(shipment.TimestampLayout),
		Status:       r.Status,
		Locale:       r.Locale.Name(),
		LocaleOrigin: r.Locale.Origin().String(),
	}
}

func newTransferDoc(t stats.Transfer, locale string) TransferDoc {
	return TransferDoc{
		Locale:   locale,
		From:     newRecordDoc(t.From),
		To:       newRecordDoc(t.To),
		Minutes:  t.Minutes,
		Duration: FormatMinutes(t.Minutes),
	}
}
