package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type TelefonesRequest struct {
	Principal  string  `json:"principal"  validate:"required,telefone"`
	Secundario *string `json:"secundario" validate:"omitempty,telefone"`
}

type EmailsRequest struct {
	Principal  string  `json:"principal"  validate:"required,email"`
	Secundario *string `json:"secundario" validate:"omitempty,email"`
}

type EnderecoRequest struct {
	Logradouro  string  `json:"logradouro"  validate:"required"`
	Numero      string  `json:"numero"      validate:"required"`
	Complemento *string `json:"complemento"`
	Bairro      string  `json:"bairro"      validate:"required"`
	Cidade      string  `json:"cidade"      validate:"required"`
	Estado      string  `json:"estado"      validate:"required,uf"`
	CEP         string  `json:"cep"         validate:"required,cep"`
}

// ClienteRequest creates or fully replaces a customer. The document number is
// checked against its type (CPF checksum or 14-digit CNPJ) by the service.
type ClienteRequest struct {
	NomeCompleto    string           `json:"nome_completo"    validate:"required,min=3,max=120"`
	DocumentoTipo   string           `json:"documento_tipo"   validate:"required,oneof=cpf cnpj"`
	DocumentoNumero string           `json:"documento_numero" validate:"required"`
	DataNascimento  *string          `json:"data_nascimento"  validate:"omitempty,datetime=2006-01-02"`
	Telefones       TelefonesRequest `json:"telefones"`
	Emails          EmailsRequest    `json:"emails"`
	Endereco        EnderecoRequest  `json:"endereco"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID              string           `json:"id"`
	NomeCompleto    string           `json:"nome_completo"`
	DocumentoTipo   string           `json:"documento_tipo"`
	DocumentoNumero string           `json:"documento_numero"`
	DataNascimento  *string          `json:"data_nascimento"`
	Telefones       TelefonesRequest `json:"telefones"`
	Emails          EmailsRequest    `json:"emails"`
	Endereco        EnderecoRequest  `json:"endereco"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}
