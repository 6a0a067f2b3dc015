package domain

import "time"

// DatasetMeta descreve a tabela sintetizada em memória. O ID muda a cada
// geração, então duas respostas com o mesmo ID vieram da mesma tabela.
type DatasetMeta struct {
	ID          string    `json:"id"`
	Seed        int64     `json:"seed"`
	GeneratedAt time.Time `json:"generated_at"`
	NumClients  int       `json:"num_clients"`
	NumRecords  int       `json:"num_records"`
}
