package settings

const (
	RoleIC      = "IC"
	RoleManager = "Manager"
)

const (
	ICMinLevel      = 1
	ICMaxLevel      = 8
	ManagerMinLevel = 4
	ManagerMaxLevel = 8
)

// WeightSumTolerance is the allowed deviation of the four weights from 1.0.
const WeightSumTolerance = 0.001
