package model

type KeyCount struct {
	Key   int `json:"key"`
	Count int `json:"count"`
}

type ReportResponse struct {
	TempoMean       float64    `json:"tempo_mean"`
	TempoStd        float64    `json:"tempo_std"`
	MostFrequentKey int        `json:"most_frequent_key"`
	LowPitch        int        `json:"low_pitch"`
	HighPitch       int        `json:"high_pitch"`
	KeyCounts       []KeyCount `json:"key_counts"`
	NumRetained     int        `json:"num_retained"`
	NumSkipped      int        `json:"num_skipped"`
	NumAdmitted     int        `json:"num_admitted"`
	MatrixRows      int        `json:"matrix_rows"`
	MatrixCols      int        `json:"matrix_cols"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
