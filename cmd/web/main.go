package main

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// Фронт-сервер: отдает статику приложения и проксирует запросы API
// на сервис каталога.
func main() {
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	apiURL := getEnvOrDefault("API_SERVICE_URL", "http://localhost:8081")
	target, err := url.Parse(apiURL)
	if err != nil {
		log.Fatalf("Неверный адрес сервиса каталога %q: %v", apiURL, err)
	}

	webDir := getEnvOrDefault("WEB_STATIC_DIR", filepath.Join("web", "static"))

	r := mux.NewRouter()

	r.PathPrefix("/api/fitness/").Handler(newAPIProxy(target))

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(webDir))))
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}
		// Все маршруты приложения отдают index.html, роутинг на клиенте
		http.ServeFile(w, req, filepath.Join(webDir, "index.html"))
	})

	port := getEnvOrDefault("WEB_PORT", "8080")
	log.Printf("Фронт-сервер запущен на http://localhost:%s, API: %s", port, apiURL)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// newAPIProxy создает реверс-прокси на сервис каталога с сохранением
// пути, параметров запроса и заголовка Authorization.
func newAPIProxy(target *url.URL) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)

	originalDirector := proxy.Director
	proxy.Director = func(req *http.Request) {
		path := req.URL.Path
		rawQuery := req.URL.RawQuery
		originalDirector(req)
		// Сохраняем оригинальный путь запроса
		req.URL.Path = path
		req.URL.RawQuery = rawQuery
		req.Host = target.Host
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
		log.Printf("Ошибка проксирования %s %s: %v", req.Method, req.URL.Path, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message": "Сервис каталога недоступен"}`))
	}

	return proxy
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
