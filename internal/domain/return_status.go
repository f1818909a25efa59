package domain

import "strconv"

// ReturnStatus 退货状态码
type ReturnStatus int

const (
	ReturnStatusCompleted ReturnStatus = 0
	ReturnStatusPending   ReturnStatus = 1
	ReturnStatusRejected  ReturnStatus = 2
)

var returnStatusNames = map[ReturnStatus]string{
	ReturnStatusCompleted: "Completed",
	ReturnStatusPending:   "Pending",
	ReturnStatusRejected:  "Rejected",
}

// Name 状态的可读名称，未知状态码返回 false
func (s ReturnStatus) Name() (string, bool) {
	name, ok := returnStatusNames[s]
	return name, ok
}

func (s ReturnStatus) String() string {
	if name, ok := s.Name(); ok {
		return name
	}
	return strconv.Itoa(int(s))
}
