package geometry

// DevPlan is a small built-in floor plan used by the viewer when no plan
// file is given, and by tests that need a realistic multi-room layout.
// Totals: W 4, P 2, S 1, C 1.
func DevPlan() string {
	return `+-----------+------------------+
| (closet)  |                  |
|         P | (sleeping room)  |
+-----------+  W    W          |
| (office)  |                  |
|   C       +---------+--------+
|       WW  | (toilet)|(bath)  |
|           |   P     |  S     |
+-----------+---------+--------+`
}
