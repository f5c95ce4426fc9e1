package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"skyfitness/internal/api"
	"skyfitness/internal/database"
)

func main() {
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	db := database.GetDB()
	defer db.Close()

	r := api.SetupRouter()

	port := getEnvOrDefault("PORT", "8081")
	addr := fmt.Sprintf(":%s", port)

	log.Printf("Сервер каталога запущен на http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(addr, r))
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию, если переменная не найдена
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
