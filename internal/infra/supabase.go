package infra

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	supabase "github.com/nedpals/supabase-go"
)

// NewSupabase creates a client for the hosted PostgREST document store.
// The client is lazy: connectivity is only exercised by the first query.
func NewSupabase(url, key string) (*supabase.Client, error) {
	if url == "" || key == "" {
		return nil, errors.New("supabase: url e chave são obrigatórios")
	}
	return supabase.CreateClient(strings.TrimRight(url, "/"), key), nil
}

// PingSupabase issues a read against tabela that matches no row.
func PingSupabase(ctx context.Context, client *supabase.Client, tabela string) error {
	var out []map[string]interface{}
	return client.DB.From(tabela).Select("id").Eq("id", uuid.Nil.String()).ExecuteWithContext(ctx, &out)
}
