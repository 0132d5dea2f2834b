package dashboard

import "github.com/smahajan/codequarry/internal/curriculum"

// loadedMsg is sent when the profile and learning path arrive.
type loadedMsg struct {
	Dashboard *curriculum.Dashboard
	Err       error
}
