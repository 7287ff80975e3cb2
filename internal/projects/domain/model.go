package domain

// Membership is the body returned by the join and leave endpoints.
// ProjectID is an opaque token; it is not looked up anywhere.
type Membership struct {
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

func Joined(projectID string) Membership {
	return Membership{ProjectID: projectID, Message: "Joined " + projectID}
}

func Left(projectID string) Membership {
	return Membership{ProjectID: projectID, Message: "Left " + projectID}
}
