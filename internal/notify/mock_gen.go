// internal/notify/mock_gen.go
package notify

//go:generate mockgen -typed -source=./notifier.go -destination=../mocks/mock_notifier.go -package=mocks Notifier
