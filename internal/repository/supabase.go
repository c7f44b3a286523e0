package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	supabase "github.com/nedpals/supabase-go"
)

// colecao is a typed view over one PostgREST table. The hosted API has no
// transactions; multi-key ordering and text filters are applied in memory.
type colecao[T any] struct {
	client *supabase.Client
	tabela string
}

func novaColecao[T any](client *supabase.Client, tabela string) colecao[T] {
	return colecao[T]{client: client, tabela: tabela}
}

func (c colecao[T]) todos(ctx context.Context) ([]T, error) {
	var out []T
	err := c.client.DB.From(c.tabela).Select("*").ExecuteWithContext(ctx, &out)
	return out, traduzirErroSupabase(err)
}

func (c colecao[T]) porCampo(ctx context.Context, campo, valor string) ([]T, error) {
	var out []T
	err := c.client.DB.From(c.tabela).Select("*").Eq(campo, valor).ExecuteWithContext(ctx, &out)
	return out, traduzirErroSupabase(err)
}

func (c colecao[T]) umPorCampo(ctx context.Context, campo, valor string) (*T, error) {
	out, err := c.porCampo(ctx, campo, valor)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// entre returns rows with de <= campo <= ate. Bounds are business dates.
func (c colecao[T]) entre(ctx context.Context, campo string, de, ate time.Time) ([]T, error) {
	var out []T
	err := c.client.DB.From(c.tabela).Select("*").
		Gte(campo, formatarData(de)).
		Lte(campo, formatarData(ate)).
		ExecuteWithContext(ctx, &out)
	return out, traduzirErroSupabase(err)
}

// antes returns rows with campo < limite.
func (c colecao[T]) antes(ctx context.Context, campo string, limite time.Time) ([]T, error) {
	var out []T
	err := c.client.DB.From(c.tabela).Select("*").Lt(campo, formatarData(limite)).ExecuteWithContext(ctx, &out)
	return out, traduzirErroSupabase(err)
}

// inserir writes v and copies back the stored representation.
func (c colecao[T]) inserir(ctx context.Context, v *T) error {
	var out []T
	if err := c.client.DB.From(c.tabela).Insert(v).ExecuteWithContext(ctx, &out); err != nil {
		return traduzirErroSupabase(err)
	}
	if len(out) > 0 {
		*v = out[0]
	}
	return nil
}

// atualizar applies payload to the row matching every filter pair and
// returns the number of rows changed.
func (c colecao[T]) atualizar(ctx context.Context, payload interface{}, filtros ...string) (int, error) {
	q := c.client.DB.From(c.tabela).Update(payload)
	for i := 0; i+1 < len(filtros); i += 2 {
		q = q.Eq(filtros[i], filtros[i+1])
	}
	var out []T
	if err := q.ExecuteWithContext(ctx, &out); err != nil {
		return 0, traduzirErroSupabase(err)
	}
	return len(out), nil
}

func (c colecao[T]) atualizarPorID(ctx context.Context, id string, payload interface{}) error {
	n, err := c.atualizar(ctx, payload, "id", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// excluir checks the row exists before deleting it: DELETE is sent without
// Prefer: return=representation, so PostgREST answers 204 with no body.
func (c colecao[T]) excluir(ctx context.Context, id string) error {
	var achados []map[string]interface{}
	err := c.client.DB.From(c.tabela).Select("id").Eq("id", id).ExecuteWithContext(ctx, &achados)
	if err != nil {
		return traduzirErroSupabase(err)
	}
	if len(achados) == 0 {
		return ErrNotFound
	}
	err = c.client.DB.From(c.tabela).Delete().Eq("id", id).ExecuteWithContext(ctx, nil)
	return traduzirErroSupabase(err)
}

// semCampos renders v as a column map without the given columns.
func semCampos(v interface{}, campos ...string) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := make(map[string]interface{})
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for _, c := range campos {
		delete(m, c)
	}
	return m, nil
}

// formatarData renders a business date (midnight UTC) as AAAA-MM-DD. The
// query builder wraps values holding ':' in double quotes, which rules out
// full timestamps as filter values.
func formatarData(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func traduzirErroSupabase(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key") {
		return ErrDuplicado
	}
	return err
}
