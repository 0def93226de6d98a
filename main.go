/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@stonkchonk/interplanetary-localization
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import "github.com/stonkchonk/interplanetary-localization/cmd"

/*****************************************************************************************************************/

func main() {
	cmd.Execute()
}

/*****************************************************************************************************************/
