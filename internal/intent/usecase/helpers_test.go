package usecase_test

import (
	"context"
	"fmt"

	"intent-chatbot/internal/intent"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepo struct {
	catalog intent.Catalog
	err     error
}

func (m *mockRepo) LoadCatalog(ctx context.Context) (intent.Catalog, error) {
	return m.catalog, m.err
}

// panicSource simulates a broken random source.
type panicSource struct{}

func (panicSource) IntN(n int) int { panic("random source exploded") }

func scenarioCatalog() intent.Catalog {
	return intent.Catalog{Intents: []intent.Intent{
		{Tag: "greeting", Patterns: []string{"hi", "hello"}, Responses: []string{"Hello!", "Hey there!"}},
		{Tag: "bye", Patterns: []string{"bye", "goodbye"}, Responses: []string{"Goodbye!"}},
	}}
}

// wideCatalog has n single-pattern intents, so unknown input scores 1/n per tag.
func wideCatalog(n int) intent.Catalog {
	c := intent.Catalog{}
	for i := 0; i < n; i++ {
		c.Intents = append(c.Intents, intent.Intent{
			Tag:       fmt.Sprintf("tag%d", i),
			Patterns:  []string{fmt.Sprintf("word%d", i)},
			Responses: []string{fmt.Sprintf("reply%d", i)},
		})
	}
	return c
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
