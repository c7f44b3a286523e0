package model

import (
	"time"

	"github.com/google/uuid"
)

type TelefonesCliente struct {
	Principal  string  `gorm:"not null" json:"telefone_principal"`
	Secundario *string `json:"telefone_secundario"`
}

type EmailsCliente struct {
	Principal  string  `gorm:"not null" json:"email_principal"`
	Secundario *string `json:"email_secundario"`
}

type EnderecoCliente struct {
	Logradouro  string  `gorm:"not null" json:"endereco_logradouro"`
	Numero      string  `gorm:"not null" json:"endereco_numero"`
	Complemento *string `json:"endereco_complemento"`
	Bairro      string  `gorm:"not null" json:"endereco_bairro"`
	Cidade      string  `gorm:"not null" json:"endereco_cidade"`
	Estado      string  `gorm:"type:varchar(2);not null" json:"endereco_estado"`
	CEP         string  `gorm:"column:cep;type:varchar(9);not null" json:"endereco_cep"`
}

// Cliente stores a customer record.
// DocumentoTipo: "cpf" | "cnpj"
type Cliente struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NomeCompleto    string     `gorm:"index;not null" json:"nome_completo"`
	DocumentoTipo   string     `gorm:"type:varchar(4);not null" json:"documento_tipo"`
	DocumentoNumero string     `gorm:"uniqueIndex;not null" json:"documento_numero"`
	DataNascimento  *time.Time `json:"data_nascimento"`

	TelefonesCliente `gorm:"embedded;embeddedPrefix:telefone_"`
	EmailsCliente    `gorm:"embedded;embeddedPrefix:email_"`
	EnderecoCliente  `gorm:"embedded;embeddedPrefix:endereco_"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
