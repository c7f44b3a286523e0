package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Driver-independent errors. Services match them with errors.Is; the
// underlying driver error is never exposed to callers.
var (
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicado = errors.New("registro duplicado")
)

// traduzirErro maps gorm/pgx errors onto the package sentinels.
func traduzirErro(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "SQLSTATE 23505"):
		return ErrDuplicado
	}
	return err
}

// checarAfetados turns a zero-row write into ErrNotFound.
func checarAfetados(res *gorm.DB) error {
	if res.Error != nil {
		return traduzirErro(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
