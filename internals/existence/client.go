// Package existence concentra a validação de referências entre serviços:
// antes de aceitar um id de entidade mantida por outro serviço, o handler
// consulta o endpoint de listagem do serviço dono e procura o id lá.
//
// A checagem vale só para o instante da chamada. Entre ela e o commit local
// a entidade remota pode ser apagada por outra request; a referência fica
// pendurada. Comportamento aceito e documentado, não há lock nem recheck.
package existence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Kind separa as falhas de infraestrutura da resposta de negócio
// (não-encontrado). O chamador mapeia cada uma para um status distinto.
type Kind int

const (
	// KindUnreachable: transporte falhou (conexão recusada, timeout, DNS).
	KindUnreachable Kind = iota
	// KindBadStatus: o serviço respondeu, mas fora da faixa 2xx.
	KindBadStatus
	// KindBadBody: 2xx com corpo que não é um array JSON de objetos com "id".
	KindBadBody
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "upstream unreachable"
	case KindBadStatus:
		return "upstream error"
	case KindBadBody:
		return "upstream bad response"
	default:
		return "upstream failure"
	}
}

// UpstreamError descreve uma falha na consulta ao serviço dono. Nunca é
// tratada como "não existe": vira 500 no handler, não 404.
type UpstreamError struct {
	Kind   Kind
	URL    string
	Status int   // preenchido quando Kind == KindBadStatus
	Err    error // causa subjacente, quando houver
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindBadStatus:
		return fmt.Sprintf("%s: GET %s: status %d", e.Kind, e.URL, e.Status)
	default:
		return fmt.Sprintf("%s: GET %s: %v", e.Kind, e.URL, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client faz as consultas de existência com timeout limitado. Um por serviço,
// compartilhado entre os handlers.
type Client struct {
	http *http.Client
}

// NewClient cria o cliente com o timeout dado. Timeout zero não é permitido:
// as versões antigas do sistema não limitavam a chamada e uma indisponibilidade
// do serviço irmão travava a request inteira.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// textualID aceita o id remoto tanto como número JSON quanto como string
// numérica, guardando sempre a forma textual.
type textualID string

func (t *textualID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	*t = textualID(s)
	return nil
}

type listItem struct {
	ID textualID `json:"id"`
}

// Exists consulta listURL e procura id entre os elementos retornados.
//
// A comparação é sempre textual: o id remoto é guardado na forma textual e
// comparado por string com o candidato. Isso tolera serviços que serializam
// o id como número e clientes que mandam string numérica — a comparação crua
// entre tipos diferentes causava falsos negativos nas versões antigas.
//
// Retorna (false, *UpstreamError) para qualquer falha de transporte, status
// ou corpo; (false, nil) significa "a lista veio bem-formada e o id não está".
func (c *Client) Exists(ctx context.Context, listURL string, id string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return false, &UpstreamError{Kind: KindUnreachable, URL: listURL, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &UpstreamError{Kind: KindUnreachable, URL: listURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &UpstreamError{Kind: KindBadStatus, URL: listURL, Status: resp.StatusCode}
	}

	var items []listItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return false, &UpstreamError{Kind: KindBadBody, URL: listURL, Err: err}
	}

	for _, it := range items {
		if string(it.ID) == id {
			return true, nil
		}
	}
	return false, nil
}
