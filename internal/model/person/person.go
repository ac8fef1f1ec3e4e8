package person

import "strings"

// Person is one individual tracked by the assistance program.
type Person struct {
	ID        int    `json:"id"`
	Name      string `json:"nome"`
	Gender    string `json:"sexo"`
	Age       int    `json:"idade"`
	Condition string `json:"condicao"`
	Note      string `json:"observacao"`
}

// Fields carries the mutable attributes submitted for a create or update.
type Fields struct {
	Name      string
	Gender    string
	Age       int
	Condition string
	Note      string
}

// Valid reports whether the fields are acceptable for a new record.
func (f Fields) Valid() bool {
	return strings.TrimSpace(f.Name) != "" && f.Age > 0
}

func (f Fields) apply(id int) Person {
	return Person{
		ID:        id,
		Name:      f.Name,
		Gender:    f.Gender,
		Age:       f.Age,
		Condition: f.Condition,
		Note:      f.Note,
	}
}

// Seed provides the sample roster loaded at startup.
func Seed() []Person {
	return []Person{
		{
			ID:        1,
			Name:      "Maria Silva",
			Gender:    "Feminino",
			Age:       35,
			Condition: "Desempregada",
			Note:      "Precisa de ajuda com alimentação.",
		},
		{
			ID:        2,
			Name:      "João Santos",
			Gender:    "Masculino",
			Age:       50,
			Condition: "Em situação de rua",
			Note:      "Necessita de roupas e abrigo.",
		},
		{
			ID:        3,
			Name:      "Ana Souza",
			Gender:    "Feminino",
			Age:       22,
			Condition: "Família de baixa renda",
			Note:      "Procura emprego e apoio para os filhos.",
		},
	}
}
