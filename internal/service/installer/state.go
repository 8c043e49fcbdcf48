package installer

// InstallState accumulates answers across wizard steps.
type InstallState struct {
	Token      string
	OwnerID    int64
	Transcript bool
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
