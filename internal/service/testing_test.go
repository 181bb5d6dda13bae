package service

import (
	"pdf-word-converter/internal/domain"
)

// Mock implementations shared by the service package tests.

type nopLogger struct{}

func newNopLogger() domain.Logger {
	return &nopLogger{}
}

func (l *nopLogger) Info(msg string, fields ...interface{})             {}
func (l *nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *nopLogger) Debug(msg string, fields ...interface{})            {}
func (l *nopLogger) Warn(msg string, fields ...interface{})             {}

// stubExtractor returns a canned extraction result or error.
type stubExtractor struct {
	result domain.ExtractionResult
	err    error
}

func (s *stubExtractor) Extract(data []byte) (domain.ExtractionResult, error) {
	if s.err != nil {
		return domain.ExtractionResult{}, s.err
	}
	return s.result, nil
}

func (s *stubExtractor) Name() string {
	return "stub"
}

// memoryStorage keeps stored files in a map and hands out fake locators.
type memoryStorage struct {
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: make(map[string][]byte)}
}

func (m *memoryStorage) Put(data []byte, filename string) (string, error) {
	m.files[filename] = data
	return "http://localhost:8080/files/" + filename, nil
}

// get returns the single stored file with the given extension.
func (m *memoryStorage) get(ext string) []byte {
	for name, data := range m.files {
		if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
			return data
		}
	}
	return nil
}
