package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env não encontrado, usando ENV do sistema")
		} else {
			log.Println("✅ .env carregado!")
		}
	} else {
		log.Println("🚀 Rodando no Railway, usando ENV do sistema")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// SERVICE ADDRESSES
// =======================
// Cada serviço conhece os irmãos somente por URL base (config externa).

func GerenciamentoBaseURL() string {
	return GetEnv("GERENCIAMENTO_URL", "http://localhost:5000")
}

func AtividadesBaseURL() string {
	return GetEnv("ATIVIDADES_URL", "http://localhost:5002")
}

func ListaAlunoURL() string     { return GerenciamentoBaseURL() + "/lista_aluno" }
func ListaProfessorURL() string { return GerenciamentoBaseURL() + "/lista_professor" }
func ListaTurmasURL() string    { return GerenciamentoBaseURL() + "/lista_turmas" }

// ValidationTimeout limita toda chamada de validação a um serviço irmão.
// A ausência de timeout nas versões antigas era um defeito.
func ValidationTimeout() time.Duration {
	ms, err := strconv.Atoi(GetEnv("VALIDATION_TIMEOUT_MS", "5000"))
	if err != nil || ms <= 0 {
		ms = 5000
	}
	return time.Duration(ms) * time.Millisecond
}
