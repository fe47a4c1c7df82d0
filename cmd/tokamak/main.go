// Command tokamak builds parametric fusion reactor geometry and exports
// manifests, meshes and build reports for downstream neutronics tooling.
package main

func main() {
	Execute()
}
