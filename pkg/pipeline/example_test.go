package pipeline_test

import (
	"context"
	"fmt"

	"github.com/codenexus/nexusflow/pkg/pipeline"
)

func Example() {
	p := pipeline.New("JSON_01", pipeline.FormatJSON)
	p.AddStage(pipeline.NewInputStage()).
		AddStage(pipeline.NewTransformStage()).
		AddStage(pipeline.NewOutputStage())

	result, err := p.Process(context.Background(), map[string]interface{}{"records": 100})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Output)

	stats := p.Stats()
	fmt.Printf("processed=%d errors=%d success=%.1f%%\n", stats.Processed, stats.Errors, stats.SuccessRate)
	// Output:
	// map[records:100]
	// processed=1 errors=0 success=100.0%
}

func ExamplePipeline_AddStageFunc() {
	p := pipeline.New("CSV_01", pipeline.FormatCSV)
	p.AddStageFunc("upper", func(_ context.Context, input interface{}) (interface{}, error) {
		return fmt.Sprintf("CSV<%v>", input), nil
	}).AddStage(pipeline.NewOutputStage())

	result, err := p.Process(context.Background(), "user,action,timestamp")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Output)
	// Output: CSV<user,action,timestamp>
}
