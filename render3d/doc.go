// Package render3d draws small lit 3D scenes with Ebitengine's DrawTriangles.
//
// There is no depth buffer. Triangles are back-face culled, clipped against
// the near plane, lit per vertex by point lights and drawn far to near.
// Curved solids other than spheres are tessellated from signed distance
// fields with sdfx.
package render3d
