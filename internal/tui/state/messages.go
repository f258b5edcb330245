// Package state provides the BubbleTea model and messages for the
// dashboard.
package state

import (
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
)

// healthCheckedMsg is sent when a backend health probe completes.
type healthCheckedMsg struct {
	Data *api.HealthData
	Err  error
}

// summarizeDoneMsg is sent when a summarize call completes.
type summarizeDoneMsg struct {
	Token  int
	Result *api.SummarizeResult
	Err    error
}

// uploadDoneMsg is sent when a document upload completes.
type uploadDoneMsg struct {
	Token  int
	Result *api.UploadResult
	Err    error
}

// answerDoneMsg is sent when a document question completes.
type answerDoneMsg struct {
	Token  int
	Result *api.AnswerResult
	Err    error
}

// pathDoneMsg is sent when learning path generation completes.
type pathDoneMsg struct {
	Token  int
	Result *api.LearningPathResult
	Err    error
}

// popularPathsMsg is sent when the popular paths list loads. The load
// doubles as the learning path tab's initialization.
type popularPathsMsg struct {
	Token int
	Data  *api.PopularPathsData
	Err   error
}

// collectionsMsg is sent when the collections list loads. The load
// doubles as the documents tab's initialization.
type collectionsMsg struct {
	Token int
	Data  *api.CollectionsData
	Err   error
}

// collectionDeletedMsg is sent when a collection deletion completes.
type collectionDeletedMsg struct {
	Token int
	Name  string
	Err   error
}

// toastExpiredMsg is sent when a toast's display window elapsed.
type toastExpiredMsg struct {
	ID int
}
