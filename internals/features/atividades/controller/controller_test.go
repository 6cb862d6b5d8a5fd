package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"escolaku_backend/internals/existence"
	"escolaku_backend/internals/features/atividades/controller"
	"escolaku_backend/internals/features/atividades/model"
	"escolaku_backend/internals/helpers/dbtime"
)

// rosterStub simula um endpoint de listagem do gerenciamento e conta quantas
// vezes foi consultado — vários cenários exigem provar que NENHUMA chamada
// remota aconteceu.
type rosterStub struct {
	srv   *httptest.Server
	calls int32
}

func newRosterStub(t *testing.T, body string) *rosterStub {
	t.Helper()
	s := &rosterStub{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *rosterStub) URL() string  { return s.srv.URL }
func (s *rosterStub) Calls() int32 { return atomic.LoadInt32(&s.calls) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.AtividadeModel{}, &model.NotaModel{}))
	return db
}

func newTestApp(t *testing.T, db *gorm.DB, professorURL, turmasURL, alunoURL string) *fiber.App {
	t.Helper()
	checker := existence.NewClient(time.Second)

	app := fiber.New()
	atividadeCtl := controller.NewAtividadeController(db, checker, professorURL, turmasURL)
	app.Get("/listar_atividade", atividadeCtl.Listar)
	app.Post("/criar_atividade", atividadeCtl.Criar)
	app.Put("/atualizar_atividade/:id", atividadeCtl.Atualizar)
	app.Delete("/deletar_atividade/:id", atividadeCtl.Deletar)

	notaCtl := controller.NewNotaController(db, checker, alunoURL)
	app.Get("/listar_notas", notaCtl.Listar)
	app.Post("/criar_notas", notaCtl.Criar)
	app.Put("/atualizar_nota/:id", notaCtl.Atualizar)
	app.Delete("/deletar_nota/:id", notaCtl.Deletar)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func seedAtividade(t *testing.T, db *gorm.DB) model.AtividadeModel {
	t.Helper()
	data, err := dbtime.Parse("2025-11-01")
	require.NoError(t, err)
	a := model.AtividadeModel{
		NomeAtividade: "Prova 1",
		Descricao:     "Primeira prova",
		PesoPorcento:  30,
		DataEntrega:   data,
		IDTurma:       12,
		IDProfessor:   1,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func TestCriarAtividadeReferenciasValidas(t *testing.T) {
	db := newTestDB(t)
	professores := newRosterStub(t, `[{"id":1,"nome":"Carlos"}]`)
	turmas := newRosterStub(t, `[{"id":12,"descricao":"Turma A"}]`)
	app := newTestApp(t, db, professores.URL(), turmas.URL(), "")

	resp, body := doJSON(t, app, http.MethodPost, "/criar_atividade",
		`{"nome_atividade":"Trabalho","descricao":"Em grupo","peso_porcento":20,"data_entrega":"2025-12-01","id_turma":12,"id_professor":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Contains(t, body["message"], "sucesso")
	require.Equal(t, int32(1), professores.Calls())
	require.Equal(t, int32(1), turmas.Calls())

	var n int64
	require.NoError(t, db.Model(&model.AtividadeModel{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}

func TestCriarAtividadeTurmaInexistente(t *testing.T) {
	db := newTestDB(t)
	professores := newRosterStub(t, `[{"id":1}]`)
	turmas := newRosterStub(t, `[{"id":12}]`)
	app := newTestApp(t, db, professores.URL(), turmas.URL(), "")

	resp, body := doJSON(t, app, http.MethodPost, "/criar_atividade",
		`{"nome_atividade":"Trabalho","descricao":"x","peso_porcento":20,"data_entrega":"2025-12-01","id_turma":99,"id_professor":1}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body["error"], "99")

	var n int64
	require.NoError(t, db.Model(&model.AtividadeModel{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCriarAtividadeCamposFaltandoSemChamadaRemota(t *testing.T) {
	db := newTestDB(t)
	professores := newRosterStub(t, `[{"id":1}]`)
	turmas := newRosterStub(t, `[{"id":12}]`)
	app := newTestApp(t, db, professores.URL(), turmas.URL(), "")

	// sem peso_porcento: 400 antes de qualquer consulta aos irmãos
	resp, _ := doJSON(t, app, http.MethodPost, "/criar_atividade",
		`{"nome_atividade":"Trabalho","descricao":"x","data_entrega":"2025-12-01","id_turma":12,"id_professor":1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Zero(t, professores.Calls())
	require.Zero(t, turmas.Calls())
}

func TestCriarAtividadeUpstreamCorpoInvalido(t *testing.T) {
	db := newTestDB(t)
	professores := newRosterStub(t, `<html>erro</html>`)
	turmas := newRosterStub(t, `[{"id":12}]`)
	app := newTestApp(t, db, professores.URL(), turmas.URL(), "")

	resp, body := doJSON(t, app, http.MethodPost, "/criar_atividade",
		`{"nome_atividade":"Trabalho","descricao":"x","peso_porcento":20,"data_entrega":"2025-12-01","id_turma":12,"id_professor":1}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// falha de upstream tem que ser distinguível de referência inexistente
	require.Contains(t, body["error"], "upstream bad response")

	var n int64
	require.NoError(t, db.Model(&model.AtividadeModel{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCriarAtividadeUpstreamForaDoAr(t *testing.T) {
	db := newTestDB(t)
	morto := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	morto.Close()
	turmas := newRosterStub(t, `[{"id":12}]`)
	app := newTestApp(t, db, morto.URL, turmas.URL(), "")

	resp, body := doJSON(t, app, http.MethodPost, "/criar_atividade",
		`{"nome_atividade":"Trabalho","descricao":"x","peso_porcento":20,"data_entrega":"2025-12-01","id_turma":12,"id_professor":1}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, body["error"], "upstream unreachable")

	var n int64
	require.NoError(t, db.Model(&model.AtividadeModel{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestAtualizarAtividadeSemReferenciasNaoConsultaIrmaos(t *testing.T) {
	db := newTestDB(t)
	professores := newRosterStub(t, `[{"id":1}]`)
	turmas := newRosterStub(t, `[{"id":12}]`)
	app := newTestApp(t, db, professores.URL(), turmas.URL(), "")
	seedAtividade(t, db)

	resp, _ := doJSON(t, app, http.MethodPut, "/atualizar_atividade/1", `{"descricao":"Nova descrição"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, professores.Calls())
	require.Zero(t, turmas.Calls())

	var a model.AtividadeModel
	require.NoError(t, db.First(&a, 1).Error)
	require.Equal(t, "Nova descrição", a.Descricao)
	require.Equal(t, "Prova 1", a.NomeAtividade)
	require.Equal(t, "2025-11-01", a.DataEntrega.String())
}

func TestCriarNotaAlunoInexistente(t *testing.T) {
	db := newTestDB(t)
	alunos := newRosterStub(t, `[{"id":3}]`)
	app := newTestApp(t, db, "", "", alunos.URL())
	seedAtividade(t, db)

	resp, body := doJSON(t, app, http.MethodPost, "/criar_notas",
		`{"nota":7.5,"id_aluno":99,"id_atividade":1}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body["error"], "99")

	var n int64
	require.NoError(t, db.Model(&model.NotaModel{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCriarNotaAtividadeInexistente(t *testing.T) {
	db := newTestDB(t)
	alunos := newRosterStub(t, `[{"id":3}]`)
	app := newTestApp(t, db, "", "", alunos.URL())

	resp, body := doJSON(t, app, http.MethodPost, "/criar_notas",
		`{"nota":7.5,"id_aluno":3,"id_atividade":8}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, body["error"], "8")
}

func TestAtualizarNotaSomenteNota(t *testing.T) {
	db := newTestDB(t)
	alunos := newRosterStub(t, `[{"id":3}]`)
	app := newTestApp(t, db, "", "", alunos.URL())
	seedAtividade(t, db)

	nota := model.NotaModel{Nota: 5.0, IDAluno: 3, IDAtividade: 1}
	require.NoError(t, db.Create(&nota).Error)

	resp, _ := doJSON(t, app, http.MethodPut, "/atualizar_nota/1", `{"nota":9.5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// id_aluno não veio no patch: nenhuma chamada ao serviço de alunos
	require.Zero(t, alunos.Calls())

	var atualizada model.NotaModel
	require.NoError(t, db.First(&atualizada, 1).Error)
	require.Equal(t, 9.5, atualizada.Nota)
	require.Equal(t, uint(3), atualizada.IDAluno)
	require.Equal(t, uint(1), atualizada.IDAtividade)
}

func TestAtualizarNotaInexistenteSemChamadaRemota(t *testing.T) {
	db := newTestDB(t)
	alunos := newRosterStub(t, `[{"id":3}]`)
	app := newTestApp(t, db, "", "", alunos.URL())

	resp, _ := doJSON(t, app, http.MethodPut, "/atualizar_nota/50", `{"id_aluno":3}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	// entidade local não existe: a validação remota nem chega a acontecer
	require.Zero(t, alunos.Calls())
}

func TestDeletarAtividade(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(t, db, "", "", "")
	seedAtividade(t, db)

	resp, _ := doJSON(t, app, http.MethodDelete, "/deletar_atividade/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var n int64
	require.NoError(t, db.Model(&model.AtividadeModel{}).Count(&n).Error)
	require.Zero(t, n)
}
