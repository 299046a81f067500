package main

// Run executes the videos command.
func (c *VideosCmd) Run(deps *Dependencies) error {
	videos, err := deps.Videos.SearchVideos(deps.Ctx, c.Query, c.Num)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, videos)
}

// Run executes the web command.
func (c *WebCmd) Run(deps *Dependencies) error {
	results, err := deps.Web.SearchWeb(deps.Ctx, c.Query, c.Num)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, results)
}

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	images, err := deps.Images.SearchImages(deps.Ctx, c.Query, c.Num)
	if err != nil {
		return fail(deps, err)
	}
	return writeJSON(deps.Stdout, images)
}
