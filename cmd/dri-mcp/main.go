// CLI tool exposing the nutrient calculators as MCP tools over stdio.
// Each line on stdin is one CallToolRequest JSON frame; each response is one
// CallToolResult frame on stdout. Handler failures are reported in-band as
// {"error": ...} result frames so a single bad request never kills the session.
// Usage: go run ./cmd/dri-mcp
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	dri "lg/dri-outline-go"
)

type CalculateEERParams struct {
	Age           float64 `json:"age" description:"Age in years, 14 or older"`
	Height        float64 `json:"height" description:"Height in centimeters"`
	Weight        float64 `json:"weight" description:"Weight in kilograms"`
	Gender        string  `json:"gender" description:"M or F"`
	ActivityLevel string  `json:"activity_level" description:"inactive, low_active, active or very_active"`
}

type GenerateGuidelineParams struct {
	Age           float64 `json:"age" description:"Age in years, 14 or older"`
	Height        float64 `json:"height" description:"Height in centimeters"`
	Weight        float64 `json:"weight" description:"Weight in kilograms"`
	Gender        string  `json:"gender" description:"M or F"`
	ActivityLevel string  `json:"activity_level" description:"inactive, low_active, active or very_active"`
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("dri-mcp: ")
	log.SetFlags(0)

	scanner := bufio.NewScanner(os.Stdin)
	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var request protocol.CallToolRequest
		if err := json.Unmarshal([]byte(line), &request); err != nil {
			writeError(encoder, fmt.Errorf("invalid request frame: %w", err))
			continue
		}

		var result *protocol.CallToolResult
		var err error

		switch request.Name {
		case "calculate_eer":
			result, err = handleCalculateEER(&request)
		case "generate_nutritional_guideline":
			result, err = handleGenerateGuideline(&request)
		default:
			err = fmt.Errorf("unknown tool: %s", request.Name)
		}

		if err != nil {
			writeError(encoder, err)
			continue
		}
		if err := encoder.Encode(result); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("stdin read error: %v", err)
		os.Exit(1)
	}
}

func handleCalculateEER(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params CalculateEERParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	eer, err := dri.CalculateEER(params.Age, params.Height, params.Weight,
		dri.Gender(params.Gender), dri.ActivityLevel(params.ActivityLevel))
	if err != nil {
		return nil, err
	}

	return createJSONResponse(map[string]interface{}{
		"eer":   eer,
		"units": "kcal/day",
	})
}

func handleGenerateGuideline(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GenerateGuidelineParams
	if err := extractParams(req, &params); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	guideline, err := dri.GenerateNutritionalGuideline(params.Age, params.Height, params.Weight,
		dri.Gender(params.Gender), dri.ActivityLevel(params.ActivityLevel))
	if err != nil {
		return nil, err
	}

	return createJSONResponse(guideline)
}

// extractParams round-trips the request arguments through JSON into a typed
// parameter struct.
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	return nil
}

func createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}

// writeError reports a handler failure as an in-band result frame, falling
// back to stderr if even that can't be encoded.
func writeError(encoder *json.Encoder, handlerErr error) {
	result, err := createJSONResponse(map[string]string{"error": handlerErr.Error()})
	if err != nil {
		log.Printf("failed to build error response: %v", err)
		return
	}
	if err := encoder.Encode(result); err != nil {
		log.Printf("failed to encode error response: %v", err)
	}
}
