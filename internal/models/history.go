package models

// HistoryRow is one historical login event for an equipment unit, shown in
// the side panel. Keys follow the upstream column names.
type HistoryRow struct {
	ID           int64    `json:"id" db:"id"`
	OperatorNRP  string   `json:"opr_nrp" db:"opr_nrp"`
	OperatorName string   `json:"opr_username" db:"opr_username"`
	Status       string   `json:"status" db:"status"`
	Tanggal      string   `json:"tanggal" db:"tanggal"`
	Shift        string   `json:"opr_shift" db:"opr_shift"`
	Jam          string   `json:"jam" db:"jam"`
	MobileID     string   `json:"mobileid" db:"mobileid"`
	HourMeter    *float64 `json:"lgn_hourmeter" db:"lgn_hourmeter"`
	PosName      string   `json:"pos_name" db:"pos_name"`
	ReportTime   string   `json:"reporttime" db:"reporttime"`
	CreatedAt    string   `json:"created_at" db:"created_at"`
}
