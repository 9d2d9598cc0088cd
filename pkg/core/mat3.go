package core

import "math"

// Mat3 represents a 3x3 matrix in row-major order
type Mat3 struct {
	M [3][3]float64
}

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// RotationX builds a right-handed rotation about the X axis (pitch)
func RotationX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

// RotationY builds a right-handed rotation about the Y axis (yaw)
func RotationY(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{M: [3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// RotationZ builds a right-handed rotation about the Z axis (roll)
func RotationZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{M: [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// Mul returns the matrix product m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = m.M[i][0]*other.M[0][j] +
				m.M[i][1]*other.M[1][j] +
				m.M[i][2]*other.M[2][j]
		}
	}
	return out
}

// MulVec applies the matrix to a vector (m * v)
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = m.M[j][i]
		}
	}
	return out
}

// Determinant returns the determinant of the matrix.
// Rotation matrices have determinant 1 for any finite angle.
func (m Mat3) Determinant() float64 {
	return m.M[0][0]*(m.M[1][1]*m.M[2][2]-m.M[1][2]*m.M[2][1]) -
		m.M[0][1]*(m.M[1][0]*m.M[2][2]-m.M[1][2]*m.M[2][0]) +
		m.M[0][2]*(m.M[1][0]*m.M[2][1]-m.M[1][1]*m.M[2][0])
}

// Orientation composes the elementary rotations as roll * pitch * yaw.
// The order is part of the orientation contract: reordering changes how
// pointer input maps to the on-screen rotation.
func Orientation(pitch, yaw, roll float64) Mat3 {
	return RotationZ(roll).Mul(RotationX(pitch)).Mul(RotationY(yaw))
}
