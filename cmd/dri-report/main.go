// CLI tool to print a personalized daily nutrient report as JSON or YAML.
// Profile values come from flags, falling back to DRI_* environment variables;
// a .env file in the working directory is honored when present.
// Usage: go run ./cmd/dri-report -age 25 -height 170 -weight 70 -gender M -activity active
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	dri "lg/dri-outline-go"
)

func main() {
	// .env is optional here; flags alone are enough.
	_ = godotenv.Load()

	age := flag.Float64("age", envFloat("DRI_AGE"), "age in years (14 or older)")
	height := flag.Float64("height", envFloat("DRI_HEIGHT_CM"), "height in centimeters")
	weight := flag.Float64("weight", envFloat("DRI_WEIGHT_KG"), "weight in kilograms")
	gender := flag.String("gender", os.Getenv("DRI_GENDER"), "M or F")
	activity := flag.String("activity", envOr("DRI_ACTIVITY", "inactive"), "inactive, low_active, active or very_active")
	format := flag.String("format", "json", "output format: json or yaml")
	eerOnly := flag.Bool("eer-only", false, "print only the estimated energy requirement in kcal/day")
	flag.Parse()

	if *eerOnly {
		eer, err := dri.CalculateEER(*age, *height, *weight, dri.Gender(*gender), dri.ActivityLevel(*activity))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing energy requirement: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%.2f\n", eer)
		return
	}

	guideline, err := dri.GenerateNutritionalGuideline(*age, *height, *weight, dri.Gender(*gender), dri.ActivityLevel(*activity))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating guideline: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		out, err := json.MarshalIndent(guideline, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(guideline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding YAML: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q (want json or yaml)\n", *format)
		os.Exit(1)
	}
}

// envFloat parses a float from the environment, 0 when unset or malformed.
func envFloat(key string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0
	}
	return v
}

// envOr returns the environment value or a fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
