package session

import (
	"whattohack-api/internal/ai"
	"whattohack-api/internal/planner"
)

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

const (
	MsgAuthUnavailable    = "AI analysis unavailable - API key not configured. Try a featured hackathon for instant results!"
	MsgSearchFailed       = "Failed to analyze hackathon. Please check the URL and try again."
	MsgGenerationFailed   = "Failed to generate report. You can try regenerating manually."
	MsgRegenerationFailed = "Failed to generate. Please check your API configuration."
)

// Notice is a dismissable message shown after an action.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func searchNotice(src planner.Source) *Notice {
	switch src {
	case planner.SourceCatalog:
		return &Notice{Level: NoticeSuccess, Message: "Hackathon loaded instantly!"}
	case planner.SourceFallback:
		return &Notice{Level: NoticeSuccess, Message: "Loaded hackathon data (demo mode)"}
	default:
		return &Notice{Level: NoticeSuccess, Message: "Hackathon analyzed successfully!"}
	}
}

func searchFailedNotice(err error) *Notice {
	if ai.IsAuth(err) {
		return &Notice{Level: NoticeError, Message: MsgAuthUnavailable}
	}
	return &Notice{Level: NoticeError, Message: MsgSearchFailed}
}

func generationNotice(fromCache bool) *Notice {
	if fromCache {
		return &Notice{Level: NoticeSuccess, Message: "Report loaded!"}
	}
	return &Notice{Level: NoticeSuccess, Message: "Report generated successfully!"}
}

func generationFailedNotice(manual bool) *Notice {
	if manual {
		return &Notice{Level: NoticeError, Message: MsgRegenerationFailed}
	}
	return &Notice{Level: NoticeError, Message: MsgGenerationFailed}
}
