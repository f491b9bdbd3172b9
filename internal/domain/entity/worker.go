package entity

// Worker representa un colaborador de campo (dato de referencia, solo lectura).
type Worker struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	NationalID string `json:"nationalId" yaml:"national_id"`
	Site       string `json:"site" yaml:"site"`
	Active     bool   `json:"active" yaml:"active"`
}
