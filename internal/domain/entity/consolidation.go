package entity

// WorkerBoxes subtotal de cajas de un colaborador dentro de una consolidación.
type WorkerBoxes struct {
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
	Boxes      int    `json:"boxes"`
}

// ConsolidatedPlot agrega los apontamientos de (site, plot, date). Derivado, no se persiste.
type ConsolidatedPlot struct {
	Site       string        `json:"site"`
	Plot       string        `json:"plot"`
	Date       string        `json:"date"`
	TotalBoxes int           `json:"totalBoxes"`
	Workers    []WorkerBoxes `json:"workers"`
}

// WorkerReport resumen de producción de un colaborador en un rango de fechas inclusivo.
type WorkerReport struct {
	Worker     *Worker           `json:"worker,omitempty"`
	WorkerID   string            `json:"workerId"`
	DateStart  string            `json:"dateStart"`
	DateEnd    string            `json:"dateEnd"`
	Entries    []ProductionEntry `json:"entries"`
	TotalBoxes int               `json:"totalBoxes"`
	DaysWorked int               `json:"daysWorked"`
}

// PlotBoxes total de cajas de una parcela.
type PlotBoxes struct {
	Plot  string `json:"plot"`
	Boxes int    `json:"boxes"`
}

// SiteReport resumen de producción de una finca agrupado por parcela.
type SiteReport struct {
	Site       string      `json:"site"`
	DateStart  string      `json:"dateStart"`
	DateEnd    string      `json:"dateEnd"`
	Plots      []PlotBoxes `json:"plots"`
	TotalBoxes int         `json:"totalBoxes"`
}
