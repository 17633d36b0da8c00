//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveResponse struct {
	RunResult
	Schedules []Solution `json:"schedules"`
	Detail    string     `json:"detail"`
}

// handler accepts a roster problem document as the request body and runs
// one full search. The optional "top" field caps the schedules returned.
func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	problem, cfg, err := parseProblem(body)
	if err != nil {
		return errResp(400, err.Error())
	}
	top := 5
	var opts struct {
		Top int `json:"top"`
	}
	if json.Unmarshal([]byte(body), &opts) == nil && opts.Top > 0 {
		top = opts.Top
	}

	sched, err := NewScheduler(problem, cfg)
	if err != nil {
		return errResp(400, err.Error())
	}
	sols, elapsed := sched.Run()

	resp := solveResponse{
		RunResult: RunResult{
			RunID:        uuid.NewString(),
			Found:        len(sols) > 0,
			Solutions:    len(sols),
			Attempts:     sched.Attempts(),
			Enlargements: sched.Enlargements(),
			TimeMs:       elapsed.Milliseconds(),
		},
		Schedules: topSolutions(sols, top),
		Detail:    FormatReport(sols, top),
	}
	if resp.Found {
		resp.BestCost = sols[0].Cost
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
