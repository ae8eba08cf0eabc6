// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models
// can serve as the openai translation backend with their API key.
package models
