// Command smoke checks that every external engine is reachable with the
// configured credentials. Run it once after setting up a .env file.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️  .env file not found, using environment variables")
	}

	fmt.Println("\n🔍 Testing engine configurations...")

	required := []string{"HUME_API_KEY", "ASSEMBLYAI_API_KEY", "GROQ_API_KEY"}
	missing := false
	for _, name := range required {
		if os.Getenv(name) == "" {
			fmt.Printf("❌ %s is not set\n", name)
			missing = true
		}
	}
	if missing {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	humeOK := check(ctx, "Hume AI",
		"https://api.hume.ai/v0/batch/jobs?limit=1",
		"X-Hume-Api-Key", os.Getenv("HUME_API_KEY"))

	asmOK := check(ctx, "AssemblyAI",
		"https://api.assemblyai.com/v2/transcript?limit=1",
		"Authorization", os.Getenv("ASSEMBLYAI_API_KEY"))

	groqOK := check(ctx, "Groq",
		"https://api.groq.com/openai/v1/models",
		"Authorization", "Bearer "+os.Getenv("GROQ_API_KEY"))

	fmt.Println("\n📋 Summary:")
	fmt.Printf("Hume AI: %s\n", mark(humeOK))
	fmt.Printf("AssemblyAI: %s\n", mark(asmOK))
	fmt.Printf("Groq: %s\n", mark(groqOK))

	if humeOK && asmOK && groqOK {
		fmt.Println("\n🎉 All engines are configured correctly!")
		return
	}
	fmt.Println("\n⚠️  Some engines failed. Check the API keys in your .env file.")
	os.Exit(1)
}

func check(ctx context.Context, name, url, header, value string) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		fmt.Printf("❌ %s request failed: %v\n", name, err)
		return false
	}
	req.Header.Set(header, value)

	resp, err := (&http.Client{Timeout: 15 * time.Second}).Do(req)
	if err != nil {
		fmt.Printf("❌ %s unreachable: %v\n", name, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		fmt.Printf("❌ %s returned status %d\n", name, resp.StatusCode)
		return false
	}
	fmt.Printf("✅ %s key accepted\n", name)
	return true
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
