package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var paths = []string{
	"/dashboard",
	"/dashboard/in-flow-count",
	"/orders?limit=20",
	"/orders?estado=PENDIENTE&orderBy=fechaEntrega&orderDirection=asc",
	"/bags?estado=DISPONIBLE",
	"/workers?activo=true",
}

func main() {
	token := os.Getenv("TOKEN")
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(token string) {
	url := baseURL + paths[rand.Intn(len(paths))]
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
